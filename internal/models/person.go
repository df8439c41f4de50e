// Package models defines the records exchanged with the actresses service.
package models

// Person is the base shape shared by every person record.
type Person struct {
	// DeathYear is nil for living persons.
	DeathYear *int   `json:"death_year,omitempty"`
	Name      string `json:"name"`
	Biography string `json:"biography"`
	Image     string `json:"image"`
	ID        int    `json:"id"`
	BirthYear int    `json:"birth_year"`
}

// Living reports whether the person has no recorded death year.
func (p Person) Living() bool {
	return p.DeathYear == nil
}
