package domain

import (
	"errors"
	"fmt"
)

// Errores "de negocio": los handlers los atajan y responden con un
// mensaje efímero normal. Nunca deberían llegar como excepción al
// borde del transporte.
var (
	ErrGameNotFound   = errors.New("game not found")
	ErrGuessNotFound  = errors.New("guess not found")
	ErrDuplicateGame  = errors.New("duplicate game id")
	ErrDuplicateGuess = errors.New("duplicate guess")
	ErrGameClosed     = errors.New("game is closed")
	ErrBadBounds      = errors.New("min greater than max")
)

// ErrIDGeneration sí es fatal: agotamos los intentos de generar un id
// libre (error de configuración, no de usuario).
var ErrIDGeneration = errors.New("exhausted attempts to generate a free game id")

// BoundsError: la guess no parsea o queda fuera de [min, max].
// Lleva los límites activos para armar el mensaje de validación.
type BoundsError struct {
	Min, Max *int
	Value    string
}

func (e *BoundsError) Error() string {
	switch {
	case e.Min != nil && e.Max != nil:
		return fmt.Sprintf("guess %q out of bounds [%d, %d]", e.Value, *e.Min, *e.Max)
	case e.Min != nil:
		return fmt.Sprintf("guess %q below minimum %d", e.Value, *e.Min)
	case e.Max != nil:
		return fmt.Sprintf("guess %q above maximum %d", e.Value, *e.Max)
	}
	return fmt.Sprintf("invalid guess %q", e.Value)
}

// IsBusiness dice si err es un error esperado de dominio (recuperable).
func IsBusiness(err error) bool {
	var be *BoundsError
	return errors.Is(err, ErrGameNotFound) ||
		errors.Is(err, ErrGuessNotFound) ||
		errors.Is(err, ErrDuplicateGame) ||
		errors.Is(err, ErrDuplicateGuess) ||
		errors.Is(err, ErrGameClosed) ||
		errors.Is(err, ErrBadBounds) ||
		errors.As(err, &be)
}
