package models

type Director struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type DirectorInput struct {
	Name string `json:"name"`
}
