package normalizer

import "actresses/internal/models"

// Transformer converts validated JSON objects into typed records.
type Transformer struct{}

// NewTransformer creates a new transformer instance.
func NewTransformer() *Transformer {
	return &Transformer{}
}

// Transform builds an Actress from a decoded object. A missing death_year
// leaves Person.DeathYear nil.
func (t *Transformer) Transform(data any) (models.Actress, error) {
	obj, ok := data.(map[string]any)
	if !ok || obj == nil {
		return models.Actress{}, ErrNotObject
	}

	var (
		a   models.Actress
		err error
	)

	if a.ID, err = intField(obj, "id"); err != nil {
		return models.Actress{}, err
	}

	if a.Name, err = stringField(obj, "name"); err != nil {
		return models.Actress{}, err
	}

	if a.BirthYear, err = intField(obj, "birth_year"); err != nil {
		return models.Actress{}, err
	}

	if _, present := obj["death_year"]; present {
		year, err := intField(obj, "death_year")
		if err != nil {
			return models.Actress{}, err
		}

		a.DeathYear = &year
	}

	if a.Biography, err = stringField(obj, "biography"); err != nil {
		return models.Actress{}, err
	}

	if a.Image, err = stringField(obj, "image"); err != nil {
		return models.Actress{}, err
	}

	if a.MostFamousMovies, err = moviesField(obj); err != nil {
		return models.Actress{}, err
	}

	if a.Awards, err = stringField(obj, "awards"); err != nil {
		return models.Actress{}, err
	}

	nationality, err := stringField(obj, "nationality")
	if err != nil {
		return models.Actress{}, err
	}

	a.Nationality = models.Nationality(nationality)

	return a, nil
}
