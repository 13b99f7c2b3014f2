package parsing

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// Formatos de data aceitos. O primeiro é o formato canônico gerado por
// SampleCSV; os demais são tolerados mas não fazem parte do contrato.
var dateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	"2006/01/02",
	"01/02/2006",
}

// RecordParser transforma texto delimitado bruto em registros validados.
type RecordParser interface {
	Parse(text string) Result
}

type Service struct{}

// NewService cria uma nova instância do parser de registros
func NewService() *Service {
	return &Service{}
}

// Parse processa o texto completo: a primeira linha não vazia é o cabeçalho,
// as demais são linhas de dados. Linhas problemáticas geram diagnósticos e
// nunca abortam o parse das linhas restantes.
func (s *Service) Parse(text string) Result {
	result := Result{
		Records:     make([]domain.SalesRecord, 0),
		Diagnostics: make([]Diagnostic, 0),
	}

	lines := make([]string, 0)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		// Linhas vazias ou só com espaços são descartadas silenciosamente
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}

	if len(lines) == 0 {
		return result
	}

	header := splitLine(lines[0])

	for i, line := range lines[1:] {
		rowIndex := i + 1 // base 1, cabeçalho excluído

		tokens := splitLine(line)
		if len(tokens) != len(header) {
			result.Diagnostics = append(result.Diagnostics, Diagnostic{
				Code:    DiagColumnMismatch,
				Row:     rowIndex,
				Message: fmt.Sprintf("column count mismatch: expected %d columns, got %d", len(header), len(tokens)),
			})
			continue
		}

		record, diag := buildRow(header, tokens, rowIndex)
		if diag != nil {
			result.Diagnostics = append(result.Diagnostics, *diag)
			continue
		}

		result.Records = append(result.Records, record)
	}

	logrus.WithFields(logrus.Fields{
		"records":     len(result.Records),
		"diagnostics": len(result.Diagnostics),
	}).Debug("Parse de registros concluído")

	return result
}

// splitLine tokeniza uma linha separada por vírgulas com suporte a aspas:
// uma aspa alterna o modo "dentro de campo com aspas", onde a vírgula vira
// conteúdo literal. Não há suporte a aspas duplicadas de escape.
func splitLine(line string) []string {
	tokens := make([]string, 0)
	var current strings.Builder
	inQuotes := false

	for _, ch := range line {
		switch {
		case ch == '"':
			inQuotes = !inQuotes
		case ch == ',' && !inQuotes:
			tokens = append(tokens, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}

	tokens = append(tokens, strings.TrimSpace(current.String()))
	return tokens
}

// buildRow constrói um registro a partir dos tokens de uma linha, aplicando
// os defaults por campo e validando o invariante do registro. O retorno é um
// resultado-ou-diagnóstico: exatamente um dos dois é preenchido.
func buildRow(header, tokens []string, rowIndex int) (domain.SalesRecord, *Diagnostic) {
	values := make(map[string]string, len(header))
	for i, field := range header {
		values[field] = tokens[i]
	}

	record := domain.SalesRecord{
		ID:         defaultString(values["id"], fmt.Sprintf("order_%d", rowIndex)),
		Revenue:    parseFloatOrDefault(values["revenue"], 0),
		OrderCount: parseIntOrDefault(values["orders"], 1),
		CustomerID: defaultString(values["customerId"], fmt.Sprintf("customer_%d", rowIndex)),
		ProductID:  defaultString(values["productId"], fmt.Sprintf("product_%d", rowIndex)),
		Category:   defaultString(values["category"], "Unknown"),
		Region:     defaultString(values["region"], "Unknown"),
	}

	if name := values["productName"]; name != "" {
		record.ProductName = &name
	}

	// A data não tem default: ausente ou inválida torna o registro inválido
	if date, ok := parseRecordDate(values["date"]); ok {
		record.Date = date
	}

	if !record.IsValid() {
		return domain.SalesRecord{}, &Diagnostic{
			Code:    DiagInvalidRow,
			Row:     rowIndex,
			Message: fmt.Sprintf("skipping invalid row %d", rowIndex),
			Record:  &record,
		}
	}

	return record, nil
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// Falhas de coerção numérica caem no default da coluna, não invalidam a linha
func parseFloatOrDefault(value string, fallback float64) float64 {
	if value == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return f
}

func parseIntOrDefault(value string, fallback int) int {
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}

func parseRecordDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if date, err := time.Parse(layout, value); err == nil {
			return date, true
		}
	}

	return time.Time{}, false
}
