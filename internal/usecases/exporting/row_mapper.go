package exporting

import (
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-console-api/internal/domain"
)

// exportDateLayout é o formato da coluna de data reservada (DD/MM/YYYY).
const exportDateLayout = "02/01/2006"

// mappedColumn é um campo do mapeamento já resolvido para um índice de coluna.
type mappedColumn struct {
	Key    string
	Column domain.ColumnIndex
	Spec   fieldSpec
}

// MapRows converte a lista achatada de registros na matriz de células a ser
// anexada à planilha: uma linha de cabeçalho seguida de uma linha por
// registro. As células são endereçadas pelo índice da coluna mapeada
// ('A'→0 ... 'Z'→25); letras fora do intervalo e campos desconhecidos são
// ignorados com aviso. Com includeDate, a coluna A é reservada para a data
// de referência. Células em branco ao final de cada linha são descartadas,
// então as linhas podem ter larguras diferentes.
func MapRows(records []*ExportRecord, mapping map[string]string, includeDate bool, asOf time.Time) ([][]string, error) {
	columns := resolveMapping(mapping, includeDate)
	if len(columns) == 0 && !includeDate {
		return nil, NewExportError(ErrRowTransform, "", "mapeamento sem colunas válidas")
	}

	values := make([][]string, 0, len(records)+1)

	header := blankRow()
	if includeDate {
		header[0] = DateFieldLabel
	}
	for _, col := range columns {
		header[col.Column] = col.Spec.Label
	}
	values = append(values, trimRow(header))

	for _, record := range records {
		row := blankRow()
		if includeDate {
			row[0] = asOf.Format(exportDateLayout)
		}

		for _, col := range columns {
			raw, ok := col.Spec.Extract(record)
			if !ok || raw == "" {
				continue
			}
			row[col.Column] = formatValue(raw, col.Spec.Format)
		}

		values = append(values, trimRow(row))
	}

	return values, nil
}

// resolveMapping valida o mapeamento campo→letra e o resolve em índices.
// A iteração segue a ordem alfabética das chaves para que, havendo dois
// campos mapeados na mesma coluna, o vencedor seja determinístico.
func resolveMapping(mapping map[string]string, includeDate bool) []mappedColumn {
	keys := make([]string, 0, len(mapping))
	for key := range mapping {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	columns := make([]mappedColumn, 0, len(keys))
	for _, key := range keys {
		letter := mapping[key]
		if letter == domain.ColumnSkip || letter == "" {
			continue
		}

		spec, ok := fieldRegistry[key]
		if !ok {
			logrus.WithField("field", key).Warn("Campo desconhecido no mapeamento de colunas, ignorando")
			continue
		}

		column, err := domain.ParseColumnLetter(letter)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"field":  key,
				"column": letter,
			}).Warn("Letra de coluna inválida no mapeamento, ignorando")
			continue
		}

		if includeDate && column == 0 {
			// A coluna A é reservada para a data por convenção; o campo
			// mapeado nela sobrescreveria a data, então apenas avisamos.
			logrus.WithField("field", key).Warn("Campo mapeado na coluna A reservada para a data")
		}

		columns = append(columns, mappedColumn{Key: key, Column: column, Spec: spec})
	}

	return columns
}

func blankRow() []string {
	return make([]string, domain.MaxColumns)
}

// trimRow descarta as células em branco após a última coluna preenchida.
func trimRow(row []string) []string {
	last := -1
	for i, cell := range row {
		if cell != "" {
			last = i
		}
	}
	return row[:last+1]
}
