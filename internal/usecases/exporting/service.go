package exporting

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-console-api/infrastructure/integrator/facebook"
	"github.com/vfg2006/ads-console-api/infrastructure/integrator/sheets"
	"github.com/vfg2006/ads-console-api/infrastructure/repository"
	"github.com/vfg2006/ads-console-api/internal/domain"
)

// Service executa um job de exportação de ponta a ponta: credenciais,
// snapshot das contas, achatamento, mapeamento de colunas e escrita na
// planilha.
type Service interface {
	RunExport(ctx context.Context, cfg *domain.ExportConfig) (int, error)
}

type ExportService struct {
	credentialRepo repository.CredentialRepository
	facebook       facebook.Integrator
	sheets         sheets.Integrator
}

func NewService(
	credentialRepo repository.CredentialRepository,
	facebookIntegrator facebook.Integrator,
	sheetsIntegrator sheets.Integrator,
) Service {
	return &ExportService{
		credentialRepo: credentialRepo,
		facebook:       facebookIntegrator,
		sheets:         sheetsIntegrator,
	}
}

// RunExport executa o pipeline completo de um job e retorna a quantidade de
// linhas de dados exportadas. Pré-requisitos ausentes retornam um erro da
// família ErrMissingPrerequisite (ver IsSkip); as demais falhas retornam o
// erro da etapa correspondente da taxonomia.
func (s *ExportService) RunExport(ctx context.Context, cfg *domain.ExportConfig) (int, error) {
	credential, token, err := s.resolveCredentials(cfg)
	if err != nil {
		return 0, err
	}

	asOf := time.Now()

	snapshots, err := s.fetchSnapshots(ctx, cfg, *credential.FacebookToken, asOf)
	if err != nil {
		return 0, err
	}

	records := flattenSnapshots(snapshots, cfg.DataType)
	if len(records) == 0 {
		// Resultado vazio é saída normal: nada a anexar.
		logrus.WithField("config_id", cfg.ID).Info("Exportação sem registros para o período")
		return 0, nil
	}

	values, err := MapRows(records, cfg.ColumnMapping, cfg.IncludeDate, asOf)
	if err != nil {
		return 0, err
	}

	if err := s.sheets.AppendValues(token, cfg.SpreadsheetID, cfg.SheetName, values); err != nil {
		return 0, NewExportError(ErrSheetWrite, cfg.ID, err.Error())
	}

	return len(records), nil
}

// resolveCredentials valida os pré-requisitos do job e renova o access token
// do Google, persistindo os tokens rotacionados.
func (s *ExportService) resolveCredentials(cfg *domain.ExportConfig) (*domain.UserCredential, string, error) {
	credential, err := s.credentialRepo.GetByUserID(cfg.UserID)
	if err != nil {
		return nil, "", NewExportError(ErrCredentialRefresh, cfg.ID, err.Error())
	}

	switch {
	case credential == nil:
		return nil, "", NewExportError(ErrCredentialNotFound, cfg.ID, "")
	case !credential.HasGoogleAccount():
		return nil, "", NewExportError(ErrNoGoogleAccount, cfg.ID, "")
	case !credential.HasRefreshToken():
		return nil, "", NewExportError(ErrNoGoogleRefreshToken, cfg.ID, "")
	case !credential.HasFacebookToken():
		return nil, "", NewExportError(ErrNoFacebookToken, cfg.ID, "")
	}

	refreshed, err := s.sheets.RefreshAccessToken(*credential.GoogleRefreshToken)
	if err != nil {
		return nil, "", NewExportError(ErrCredentialRefresh, cfg.ID, err.Error())
	}

	if err := s.credentialRepo.UpdateGoogleTokens(
		cfg.UserID,
		refreshed.AccessToken,
		refreshed.RefreshToken,
		refreshed.ExpiresAt,
	); err != nil {
		// O token renovado segue válido para esta execução; a próxima renova
		// de novo a partir do refresh token anterior.
		logrus.WithError(err).WithField("user_id", cfg.UserID).
			Warn("Erro ao persistir tokens renovados do Google")
	}

	return credential, refreshed.AccessToken, nil
}

// fetchSnapshots busca o snapshot de cada conta do job em paralelo. Qualquer
// conta com falha derruba o job inteiro: exportação parcial confundiria a
// planilha de destino.
func (s *ExportService) fetchSnapshots(ctx context.Context, cfg *domain.ExportConfig, accessToken string, asOf time.Time) ([]*domain.AccountSnapshot, error) {
	if len(cfg.AccountIDs) == 0 {
		return nil, nil
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		snapshots = make([]*domain.AccountSnapshot, len(cfg.AccountIDs))
		fetchErr  error
	)

	for idx, accountID := range cfg.AccountIDs {
		wg.Add(1)

		go func(idx int, accountID string) {
			defer wg.Done()

			if ctx.Err() != nil {
				return
			}

			snapshot, err := s.facebook.GetAccountSnapshot(accessToken, accountID, cfg.DataType, asOf)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				if fetchErr == nil {
					fetchErr = fmt.Errorf("conta %s: %w", accountID, err)
				}
				return
			}
			snapshots[idx] = snapshot
		}(idx, accountID)
	}

	wg.Wait()

	if fetchErr != nil {
		return nil, NewExportError(ErrUpstreamFetch, cfg.ID, fetchErr.Error())
	}
	if err := ctx.Err(); err != nil {
		return nil, NewExportError(ErrUpstreamFetch, cfg.ID, err.Error())
	}

	result := make([]*domain.AccountSnapshot, 0, len(snapshots))
	for _, snapshot := range snapshots {
		if snapshot != nil {
			result = append(result, snapshot)
		}
	}

	return result, nil
}

// flattenSnapshots achata os snapshots no nível do tipo de dado exportado,
// mesclando o insight de cada entidade. A ordem de entrada é preservada.
func flattenSnapshots(snapshots []*domain.AccountSnapshot, dataType domain.ExportDataType) []*ExportRecord {
	records := make([]*ExportRecord, 0)

	for _, snapshot := range snapshots {
		switch dataType {
		case domain.ExportDataTypeAccounts:
			records = append(records, &ExportRecord{
				Account: snapshot.Account,
				Insight: InsightFor(snapshot.Insights, snapshot.Account.ID),
			})

		case domain.ExportDataTypeCampaigns:
			for _, campaign := range snapshot.Campaigns {
				records = append(records, &ExportRecord{
					Account:  snapshot.Account,
					Campaign: campaign,
					Insight:  InsightFor(snapshot.Insights, campaign.ID),
				})
			}

		case domain.ExportDataTypeAdSets:
			for _, campaign := range snapshot.Campaigns {
				for _, adset := range campaign.AdSets {
					records = append(records, &ExportRecord{
						Account:  snapshot.Account,
						Campaign: campaign,
						AdSet:    adset,
						Insight:  InsightFor(snapshot.Insights, adset.ID),
					})
				}
			}

		case domain.ExportDataTypeAds:
			for _, campaign := range snapshot.Campaigns {
				for _, adset := range campaign.AdSets {
					for _, ad := range adset.Ads {
						records = append(records, &ExportRecord{
							Account:  snapshot.Account,
							Campaign: campaign,
							AdSet:    adset,
							Ad:       ad,
							Insight:  InsightFor(snapshot.Insights, ad.ID),
						})
					}
				}
			}
		}
	}

	return records
}
