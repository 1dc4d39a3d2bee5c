package domain

import "fmt"

// MaxColumns limita o mapeamento de colunas ao intervalo A–Z.
const MaxColumns = 26

// ColumnIndex é o índice de coluna de planilha limitado a 0–25 ('A'–'Z').
type ColumnIndex int

// ErrColumnOutOfRange indica uma letra de coluna fora do intervalo A–Z.
type ErrColumnOutOfRange struct {
	Letter string
}

func (e *ErrColumnOutOfRange) Error() string {
	return fmt.Sprintf("letra de coluna fora do intervalo A-Z: %q", e.Letter)
}

// ParseColumnLetter converte uma letra de coluna ('A'–'Z', maiúscula ou
// minúscula) no índice correspondente. Letras compostas (AA) ou caracteres
// inválidos retornam erro.
func ParseColumnLetter(letter string) (ColumnIndex, error) {
	if len(letter) != 1 {
		return 0, &ErrColumnOutOfRange{Letter: letter}
	}

	c := letter[0]
	switch {
	case c >= 'A' && c <= 'Z':
		return ColumnIndex(c - 'A'), nil
	case c >= 'a' && c <= 'z':
		return ColumnIndex(c - 'a'), nil
	default:
		return 0, &ErrColumnOutOfRange{Letter: letter}
	}
}

// Letter retorna a letra da coluna ('A'–'Z').
func (c ColumnIndex) Letter() string {
	if c < 0 || c >= MaxColumns {
		return ""
	}
	return string(rune('A' + c))
}
