package normalizer

import (
	"fmt"

	"actresses/internal/models"
)

// Processor validates a decoded payload and converts it into an Actress.
type Processor struct {
	validator   *Validator
	transformer *Transformer
}

// NewProcessor creates a processor with a strict validator.
func NewProcessor() *Processor {
	return NewProcessorWithValidator(NewValidator())
}

// NewProcessorWithValidator creates a processor using the given validator.
func NewProcessorWithValidator(v *Validator) *Processor {
	if v == nil {
		v = NewValidator()
	}

	return &Processor{
		validator:   v,
		transformer: NewTransformer(),
	}
}

// Process validates rawData and returns the typed record.
func (p *Processor) Process(rawData any) (models.Actress, error) {
	if err := p.validator.Validate(rawData); err != nil {
		return models.Actress{}, fmt.Errorf("validation failed: %w", err)
	}

	actress, err := p.transformer.Transform(rawData)
	if err != nil {
		return models.Actress{}, fmt.Errorf("transformation failed: %w", err)
	}

	return actress, nil
}
