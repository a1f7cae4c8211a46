package store

import (
	"strconv"

	"github.com/palemoky/mimica-master/internal/game/deck"
)

// DefaultCategories seeds a fresh file store so the game is playable on
// first launch without touching the admin screen.
func DefaultCategories() []deck.Category {
	return []deck.Category{
		{
			ID:   "cat_movies",
			Name: "Movies",
			Cards: cards("card_movie",
				"Titanic", "Avatar", "The Godfather", "The Matrix", "Jurassic Park",
				"Forrest Gump", "Gladiator", "Interstellar", "Joker", "Harry Potter",
				"The Hunger Games", "The Lord of the Rings", "Fight Club", "Top Gun",
				"Mission Impossible", "Mamma Mia!", "Barbie", "Oppenheimer", "La La Land",
				"Bohemian Rhapsody", "Dune", "The Batman", "Wonka", "Pretty Woman",
			),
		},
		{
			ID:   "cat_animated",
			Name: "Animated",
			Cards: cards("card_anim",
				"The Lion King", "Finding Nemo", "Toy Story", "Frozen", "Kung Fu Panda",
				"The Jungle Book", "The Incredibles", "Despicable Me", "Inside Out",
				"Monsters Inc", "Aladdin", "Beauty and the Beast", "How to Train Your Dragon",
				"Coco", "Encanto", "Moana", "Zootopia", "Soul", "Shrek", "Madagascar",
				"Ice Age", "The Boss Baby", "Super Mario Bros",
			),
		},
		{
			ID:   "cat_series",
			Name: "Series",
			Cards: cards("card_series",
				"Breaking Bad", "Game of Thrones", "Stranger Things", "Friends",
				"The Office", "Dark", "Black Mirror", "Money Heist", "Squid Game",
				"Peaky Blinders", "Better Call Saul", "Wednesday", "Bridgerton",
				"Euphoria", "Succession", "The Last of Us", "The Bear", "The Mandalorian",
				"The Crown", "Vikings", "The Boys", "Rick and Morty",
			),
		},
		{
			ID:   "cat_characters",
			Name: "Characters",
			Cards: cards("card_char",
				"Harry Potter", "Batman", "Mickey Mouse", "Darth Vader", "Mario Bros",
				"Sherlock Holmes", "Spider-Man", "Goku", "Homer Simpson", "Barbie",
				"Iron Man", "Captain America", "Thor", "Hulk", "Wonder Woman", "Joker",
				"Harley Quinn", "Deadpool", "Wolverine", "Shrek", "SpongeBob",
				"Jack Sparrow", "James Bond", "Indiana Jones", "Yoda", "Pikachu",
			),
		},
	}
}

func cards(idPrefix string, texts ...string) []deck.CardItem {
	items := make([]deck.CardItem, len(texts))
	for i, text := range texts {
		items[i] = deck.CardItem{
			ID:   idPrefix + "_" + strconv.Itoa(i+1),
			Text: text,
		}
	}
	return items
}
