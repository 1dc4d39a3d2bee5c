package exporting

import (
	"errors"
	"fmt"
)

// Erros específicos do pipeline de exportação
var (
	// Pré-requisitos ausentes: o job é pulado no tick, sem telemetria.
	ErrMissingPrerequisite  = errors.New("pré-requisito ausente para exportação")
	ErrNoGoogleAccount      = fmt.Errorf("%w: usuário sem conta Google vinculada", ErrMissingPrerequisite)
	ErrNoGoogleRefreshToken = fmt.Errorf("%w: credencial Google sem refresh token", ErrMissingPrerequisite)
	ErrNoFacebookToken      = fmt.Errorf("%w: usuário sem token da plataforma de anúncios", ErrMissingPrerequisite)
	ErrCredentialNotFound   = fmt.Errorf("%w: credenciais do usuário não encontradas", ErrMissingPrerequisite)

	// Erros das demais etapas: o job falha e grava telemetria de falha.
	ErrCredentialRefresh = errors.New("erro ao renovar credencial do serviço de planilhas")
	ErrUpstreamFetch     = errors.New("erro ao buscar hierarquia na plataforma de anúncios")
	ErrRowTransform      = errors.New("erro ao transformar entidades em linhas de planilha")
	ErrSheetWrite        = errors.New("erro ao escrever na planilha")
)

// ExportError é um erro com contexto adicional do job de exportação.
type ExportError struct {
	Err      error  // Erro base da taxonomia
	ConfigID string // ID do job envolvido
	Details  string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ExportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ExportError) Unwrap() error {
	return e.Err
}

// NewExportError cria um novo ExportError
func NewExportError(baseErr error, configID string, details string) *ExportError {
	return &ExportError{
		Err:      baseErr,
		ConfigID: configID,
		Details:  details,
	}
}

// IsSkip verifica se o erro representa um job pulado por pré-requisito
// ausente, que não deve gravar telemetria.
func IsSkip(err error) bool {
	return errors.Is(err, ErrMissingPrerequisite)
}
