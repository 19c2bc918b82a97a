package book

// Book is one entry of the English reading catalog.
type Book struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Author string  `json:"author"`
	AR     float64 `json:"ar"`
	Lexile string  `json:"lexile"`
	Level  string  `json:"level"`
}

// SayuBook is one entry of the Sayu (Korean reading program) catalog.
type SayuBook struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Publisher string `json:"publisher"`
}
