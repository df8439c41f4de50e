package models

// MovieCount is the fixed length of Actress.MostFamousMovies.
const MovieCount = 3

// Nationality is a nationality label as reported by the service.
type Nationality string

// Recognized nationality labels. The service is not required to stay within this set.
const (
	NationalityAmerican        Nationality = "American"
	NationalityBritish         Nationality = "British"
	NationalityAustralian      Nationality = "Australian"
	NationalityIsraeliAmerican Nationality = "Israeli-American"
	NationalitySouth           Nationality = "South"
	NationalityAfrican         Nationality = "African"
	NationalityFrench          Nationality = "French"
	NationalityIndian          Nationality = "Indian"
	NationalityIsraeli         Nationality = "Israeli"
	NationalitySpanish         Nationality = "Spanish"
	NationalitySouthKorean     Nationality = "South Korean"
	NationalityChinese         Nationality = "Chinese"
)

var knownNationalities = map[Nationality]bool{
	NationalityAmerican:        true,
	NationalityBritish:         true,
	NationalityAustralian:      true,
	NationalityIsraeliAmerican: true,
	NationalitySouth:           true,
	NationalityAfrican:         true,
	NationalityFrench:          true,
	NationalityIndian:          true,
	NationalityIsraeli:         true,
	NationalitySpanish:         true,
	NationalitySouthKorean:     true,
	NationalityChinese:         true,
}

// Known reports whether n is one of the recognized labels.
func (n Nationality) Known() bool {
	return knownNationalities[n]
}

// Actress is a Person plus filmography details.
type Actress struct {
	Person
	Awards           string             `json:"awards"`
	Nationality      Nationality        `json:"nationality"`
	MostFamousMovies [MovieCount]string `json:"most_famous_movies"`
}
