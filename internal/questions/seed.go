package questions

import (
	"context"
	"errors"

	"geowiz-backend/internal/game"
)

// SeedQuestions returns the built-in question bank. IDs are stable so
// seeding is repeatable against an existing database.
func SeedQuestions() []Question {
	return []Question{
		{
			ID:           "capitals-australia",
			Mode:         game.ModeCapitals,
			Region:       game.RegionGlobal,
			QuestionText: "What is the capital of Australia?",
			Hint:         "This city is located in the Australian Capital Territory.",
			Answer:       "canberra",
			FunFact:      "Canberra was specifically designed and built to be Australia's capital city, chosen as a compromise between Sydney and Melbourne.",
			Difficulty:   2,
			VisualType:   "text",
		},
		{
			ID:                 "capitals-brazil",
			Mode:               game.ModeCapitals,
			Region:             game.RegionGlobal,
			QuestionText:       "What is the capital of Brazil?",
			Hint:               "This planned city was built in the 1950s in the country's interior.",
			Answer:             "brasilia",
			AlternativeAnswers: []string{"brasília"},
			FunFact:            "Brasília was designed by architect Oscar Niemeyer and urban planner Lúcio Costa, and was built in just 41 months!",
			Difficulty:         2,
			VisualType:         "text",
		},
		{
			ID:           "capitals-canada",
			Mode:         game.ModeCapitals,
			Region:       game.RegionNorthAmerica,
			QuestionText: "What is the capital of Canada?",
			Hint:         "This city is located in Ontario, on the border with Quebec.",
			Answer:       "ottawa",
			FunFact:      "Ottawa was chosen as Canada's capital by Queen Victoria in 1857, partly because it was less likely to be attacked by the United States!",
			Difficulty:   1,
			VisualType:   "text",
		},
		{
			ID:                 "capitals-japan",
			Mode:               game.ModeCapitals,
			Region:             game.RegionAsia,
			QuestionText:       "What is the capital of Japan?",
			Hint:               "This city was formerly known as Edo.",
			Answer:             "tokyo",
			AlternativeAnswers: []string{"tōkyō"},
			FunFact:            "Tokyo became Japan's capital in 1868 when Emperor Meiji moved from Kyoto. The name means 'Eastern Capital.'",
			Difficulty:         1,
			VisualType:         "text",
		},
		{
			ID:           "capitals-south-korea",
			Mode:         game.ModeCapitals,
			Region:       game.RegionAsia,
			QuestionText: "What is the capital of South Korea?",
			Hint:         "This city has been the capital for over 600 years.",
			Answer:       "seoul",
			FunFact:      "Seoul has been South Korea's capital for over 600 years and is home to nearly 10 million people, making it one of the world's largest cities.",
			Difficulty:   1,
			VisualType:   "text",
		},
		{
			ID:           "capitals-morocco",
			Mode:         game.ModeCapitals,
			Region:       game.RegionAfrica,
			QuestionText: "What is the capital of Morocco?",
			Hint:         "This coastal city is known for its red walls and historic medina.",
			Answer:       "rabat",
			FunFact:      "Rabat became Morocco's capital in 1912. Many people think it's Casablanca or Marrakech, but this quieter city has been the political center for over a century.",
			Difficulty:   3,
			VisualType:   "text",
		},
		{
			ID:           "capitals-new-zealand",
			Mode:         game.ModeCapitals,
			Region:       game.RegionOceania,
			QuestionText: "What is the capital of New Zealand?",
			Hint:         "This city is located on the North Island and is known for its harbor.",
			Answer:       "wellington",
			FunFact:      "Wellington is one of the windiest cities in the world and is often called the 'Windy City.' It's also the southernmost capital city in the world.",
			Difficulty:   2,
			VisualType:   "text",
		},
		{
			ID:                 "capitals-kazakhstan",
			Mode:               game.ModeCapitals,
			Region:             game.RegionAsia,
			QuestionText:       "What is the capital of Kazakhstan?",
			Hint:               "This city was renamed in 2019 to honor the former president.",
			Answer:             "nur-sultan",
			AlternativeAnswers: []string{"nursultan", "astana"},
			FunFact:            "The capital was moved from Almaty to Astana in 1997, then renamed Nur-Sultan in 2019. It's one of the newest capital cities in the world.",
			Difficulty:         4,
			VisualType:         "text",
		},
		{
			ID:           "capitals-nigeria",
			Mode:         game.ModeCapitals,
			Region:       game.RegionAfrica,
			QuestionText: "What is the capital of Nigeria?",
			Hint:         "This planned city replaced Lagos as the capital in 1991.",
			Answer:       "abuja",
			FunFact:      "Abuja was chosen as Nigeria's capital because of its central location and was specifically designed to be ethnically neutral for the diverse country.",
			Difficulty:   3,
			VisualType:   "text",
		},
		{
			ID:                 "capitals-myanmar",
			Mode:               game.ModeCapitals,
			Region:             game.RegionAsia,
			QuestionText:       "What is the capital of Myanmar?",
			Hint:               "This city replaced Yangon as the capital in 2006.",
			Answer:             "naypyidaw",
			AlternativeAnswers: []string{"nay pyi taw"},
			FunFact:            "Naypyidaw was built from scratch starting in 2002 and became Myanmar's capital in 2006. It's known for its wide, empty streets and government buildings.",
			Difficulty:         4,
			VisualType:         "text",
		},
		{
			ID:           "capitals-estonia",
			Mode:         game.ModeCapitals,
			Region:       game.RegionEurope,
			QuestionText: "What is the capital of Estonia?",
			Hint:         "This medieval city is known for its well-preserved Old Town.",
			Answer:       "tallinn",
			FunFact:      "Tallinn's Old Town is a UNESCO World Heritage site and one of the best-preserved medieval cities in Europe.",
			Difficulty:   3,
			VisualType:   "text",
		},
		{
			ID:           "capitals-slovenia",
			Mode:         game.ModeCapitals,
			Region:       game.RegionEurope,
			QuestionText: "What is the capital of Slovenia?",
			Hint:         "This city is home to the famous Triple Bridge.",
			Answer:       "ljubljana",
			FunFact:      "Ljubljana was the European Capital of Culture in 2008 and is known for its green initiatives.",
			Difficulty:   3,
			VisualType:   "text",
		},
		{
			ID:           "capitals-croatia",
			Mode:         game.ModeCapitals,
			Region:       game.RegionEurope,
			QuestionText: "What is the capital of Croatia?",
			Hint:         "This city is known for its red-tiled roofs and medieval Upper Town.",
			Answer:       "zagreb",
			FunFact:      "Zagreb's Upper Town (Gornji Grad) is connected to the Lower Town by the world's shortest funicular railway.",
			Difficulty:   2,
			VisualType:   "text",
		},
		{
			ID:           "capitals-latvia",
			Mode:         game.ModeCapitals,
			Region:       game.RegionEurope,
			QuestionText: "What is the capital of Latvia?",
			Hint:         "This city is famous for its Art Nouveau architecture.",
			Answer:       "riga",
			FunFact:      "Riga has the largest collection of Art Nouveau buildings in the world, with over 800 buildings in this architectural style.",
			Difficulty:   3,
			VisualType:   "text",
		},
		{
			ID:           "capitals-lithuania",
			Mode:         game.ModeCapitals,
			Region:       game.RegionEurope,
			QuestionText: "What is the capital of Lithuania?",
			Hint:         "This city has one of the largest surviving medieval Old Towns in Northern Europe.",
			Answer:       "vilnius",
			FunFact:      "Vilnius was designated as a European Capital of Culture in 2009 and is known for its baroque architecture.",
			Difficulty:   3,
			VisualType:   "text",
		},
		{
			ID:                 "capitals-thailand",
			Mode:               game.ModeCapitals,
			Region:             game.RegionAsia,
			QuestionText:       "What is the capital of Thailand?",
			Hint:               "This city's full ceremonial name is the longest city name in the world.",
			Answer:             "bangkok",
			AlternativeAnswers: []string{"krung thep"},
			FunFact:            "Bangkok's full ceremonial name has 169 letters and is listed in the Guinness Book of Records as the world's longest place name!",
			Difficulty:         1,
			VisualType:         "text",
		},
		{
			ID:           "capitals-vietnam",
			Mode:         game.ModeCapitals,
			Region:       game.RegionAsia,
			QuestionText: "What is the capital of Vietnam?",
			Hint:         "This city was formerly known as Saigon during French colonial rule.",
			Answer:       "hanoi",
			FunFact:      "Hanoi has been the capital of Vietnam for over 1000 years, with brief interruptions. The name means 'City inside rivers'.",
			Difficulty:   2,
			VisualType:   "text",
		},
		{
			ID:           "capitals-argentina",
			Mode:         game.ModeCapitals,
			Region:       game.RegionSouthAmerica,
			QuestionText: "What is the capital of Argentina?",
			Hint:         "This city is famous for tango dancing and colorful La Boca neighborhood.",
			Answer:       "buenos aires",
			FunFact:      "Buenos Aires is often called the 'Paris of South America' due to its European-influenced architecture and culture.",
			Difficulty:   1,
			VisualType:   "text",
		},
		{
			ID:           "capitals-chile",
			Mode:         game.ModeCapitals,
			Region:       game.RegionSouthAmerica,
			QuestionText: "What is the capital of Chile?",
			Hint:         "This city sits in a valley surrounded by the Andes mountains.",
			Answer:       "santiago",
			FunFact:      "Santiago is one of the largest cities in South America and you can ski in the nearby Andes and visit Pacific beaches on the same day!",
			Difficulty:   2,
			VisualType:   "text",
		},
		{
			ID:           "capitals-kenya",
			Mode:         game.ModeCapitals,
			Region:       game.RegionAfrica,
			QuestionText: "What is the capital of Kenya?",
			Hint:         "This city's name means 'cool water' in Maasai.",
			Answer:       "nairobi",
			FunFact:      "Nairobi is the only capital city in the world with a national park within its boundaries - you can see lions with skyscrapers in the background!",
			Difficulty:   2,
			VisualType:   "text",
		},
		{
			ID:                 "capitals-egypt",
			Mode:               game.ModeCapitals,
			Region:             game.RegionAfrica,
			QuestionText:       "What is the capital of Egypt?",
			Hint:               "This city is the largest in the Middle East and Africa.",
			Answer:             "cairo",
			AlternativeAnswers: []string{"al-qahirah"},
			FunFact:            "Cairo is known as 'The City of a Thousand Minarets' for its abundance of Islamic architecture. The nearby pyramids are over 4,500 years old!",
			Difficulty:         1,
			VisualType:         "text",
		},
		{
			ID:           "capitals-fiji",
			Mode:         game.ModeCapitals,
			Region:       game.RegionOceania,
			QuestionText: "What is the capital of Fiji?",
			Hint:         "This city is located on the island of Viti Levu.",
			Answer:       "suva",
			FunFact:      "Suva is the largest city in the South Pacific outside of Australia and New Zealand, and is known for its colonial architecture.",
			Difficulty:   3,
			VisualType:   "text",
		},
		{
			ID:           "outlines-italy",
			Mode:         game.ModeHiddenOutlines,
			Region:       game.RegionEurope,
			QuestionText: "Which European country has this distinctive boot shape?",
			Hint:         "This Mediterranean country is famous for pasta, pizza, and the Roman Empire.",
			Answer:       "italy",
			FunFact:      "Italy's distinctive boot shape is one of the most recognizable country outlines in the world. The 'boot' appears to be kicking the island of Sicily!",
			Difficulty:   1,
			VisualType:   "outline",
		},
		{
			ID:           "outlines-vietnam",
			Mode:         game.ModeHiddenOutlines,
			Region:       game.RegionAsia,
			QuestionText: "Which Asian country looks like a sideways 'S' shape?",
			Hint:         "This Southeast Asian country is shaped like a dragon and famous for pho.",
			Answer:       "vietnam",
			FunFact:      "Vietnam's distinctive S-shaped coastline stretches over 3,200 kilometers along the South China Sea, giving it a unique serpentine appearance on maps.",
			Difficulty:   2,
			VisualType:   "outline",
		},
		{
			ID:           "outlines-chile",
			Mode:         game.ModeHiddenOutlines,
			Region:       game.RegionSouthAmerica,
			QuestionText: "Which country has this distinctive elongated shape along South America's western coast?",
			Hint:         "This country is over 4,300 km long but averages only 180 km wide.",
			Answer:       "chile",
			FunFact:      "Chile is the world's longest country, stretching over 4,300 kilometers from north to south, but averaging only 180 kilometers in width. It spans 38 degrees of latitude!",
			Difficulty:   2,
			VisualType:   "outline",
		},
	}
}

// Seed loads the built-in bank into a repository. Existing IDs are
// overwritten by memory repos and rejected by Postgres; callers seeding
// Postgres should tolerate duplicate-key errors on re-runs.
func Seed(ctx context.Context, repo QuestionsRepo) error {
	for _, q := range SeedQuestions() {
		if _, err := repo.GetByID(ctx, q.ID); err == nil {
			continue
		} else if !errors.Is(err, ErrNotFound) {
			return err
		}
		if err := repo.Create(ctx, q); err != nil {
			return err
		}
	}
	return nil
}
