package domain

import "fmt"

// Category is an entry of the OpenTriviaDB category taxonomy.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Categories mirrors the official OpenTriviaDB category ids. The table
// is read-only; quizzes reference it by id.
var Categories = []Category{
	{ID: 9, Name: "General Knowledge"},
	{ID: 10, Name: "Books"},
	{ID: 11, Name: "Film"},
	{ID: 12, Name: "Music"},
	{ID: 14, Name: "Television"},
	{ID: 15, Name: "Video Games"},
	{ID: 17, Name: "Science & Nature"},
	{ID: 18, Name: "Computers"},
	{ID: 19, Name: "Mathematics"},
	{ID: 20, Name: "Mythology"},
	{ID: 21, Name: "Sports"},
	{ID: 22, Name: "Geography"},
	{ID: 23, Name: "History"},
	{ID: 24, Name: "Politics"},
	{ID: 25, Name: "Art"},
	{ID: 27, Name: "Animals"},
	{ID: 28, Name: "Vehicles"},
	{ID: 29, Name: "Comics"},
	{ID: 30, Name: "Gadgets"},
	{ID: 31, Name: "Anime & Manga"},
	{ID: 32, Name: "Cartoon & Animations"},
}

// CategoryNameByID resolves a category display name, synthesizing a
// label for ids outside the known table.
func CategoryNameByID(id int) string {
	for _, c := range Categories {
		if c.ID == id {
			return c.Name
		}
	}
	return fmt.Sprintf("Category %d", id)
}
