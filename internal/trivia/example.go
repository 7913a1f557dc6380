package trivia

// Example returns a fresh copy of the bundled board that a new session starts
// with.
func Example() Document {
	return Document{
		Title: "Trivia Challenge",
		Categories: []Category{
			{
				Name: "Space & Astronomy",
				Questions: []Question{
					{Value: 100, Question: "What is the closest planet to the Sun?", Answer: "Mercury"},
					{Value: 200, Question: "How many moons does Mars have?", Answer: "Two (Phobos and Deimos)"},
					{Value: 300, Question: "What is the name of the galaxy that contains our Solar System?", Answer: "The Milky Way"},
					{Value: 400, Question: "What is the term for a dying star that has collapsed into itself?", Answer: "Black Hole (or Neutron Star)"},
					{Value: 500, Question: "How long does it take light from the Sun to reach Earth?", Answer: "About 8 minutes (8 minutes 20 seconds)"},
				},
			},
			{
				Name: "Food & Drink",
				Questions: []Question{
					{Value: 100, Question: "What is the main ingredient in hummus?", Answer: "Chickpeas"},
					{Value: 200, Question: "Which country is the origin of the cocktail Mojito?", Answer: "Cuba"},
					{Value: 300, Question: "What type of pasta is shaped like little rice grains?", Answer: "Orzo"},
					{Value: 400, Question: "What is the most expensive spice in the world by weight?", Answer: "Saffron"},
					{Value: 500, Question: "In which country would you find the wine region of Bordeaux?", Answer: "France"},
				},
			},
			{
				Name: "World Geography",
				Questions: []Question{
					{Value: 100, Question: "What is the capital of Australia?", Answer: "Canberra"},
					{Value: 200, Question: "Which African country has the largest population?", Answer: "Nigeria"},
					{Value: 300, Question: "What is the smallest country in the world by area?", Answer: "Vatican City"},
					{Value: 400, Question: "Which two countries share the longest international border?", Answer: "Canada and USA"},
					{Value: 500, Question: "What is the only country that borders both the Atlantic and Indian Oceans?", Answer: "South Africa"},
				},
			},
			{
				Name: "Science & Nature",
				Questions: []Question{
					{Value: 100, Question: "What does DNA stand for?", Answer: "Deoxyribonucleic Acid"},
					{Value: 200, Question: "What is the largest organ in the human body?", Answer: "Skin"},
					{Value: 300, Question: "What is the most abundant gas in Earth's atmosphere?", Answer: "Nitrogen"},
					{Value: 400, Question: "How many bones are in the adult human body?", Answer: "206"},
					{Value: 500, Question: "What is the speed of light in a vacuum (rounded to nearest thousand)?", Answer: "300,000 km/s"},
				},
			},
			{
				Name: "Arts & Literature",
				Questions: []Question{
					{Value: 100, Question: "Who painted the Mona Lisa?", Answer: "Leonardo da Vinci"},
					{Value: 200, Question: "Who wrote the play 'Romeo and Juliet'?", Answer: "William Shakespeare"},
					{Value: 300, Question: "What is the longest epic poem in the world?", Answer: "The Mahabharata"},
					{Value: 400, Question: "Which artist is famous for the painting 'The Starry Night'?", Answer: "Vincent van Gogh"},
					{Value: 500, Question: "Who wrote 'One Hundred Years of Solitude'?", Answer: "Gabriel García Márquez"},
				},
			},
		},
	}
}
