// Package repository implementa a persistência dos datasets em arquivos CSV
// planos, com cache de leitura por processo e invalidação explícita. Um
// arquivo ausente é um erro fatal para a tabela; não há caminho de carga
// parcial.
package repository

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const csvDateLayout = "2006-01-02"

// readCSVFile lê um arquivo CSV e valida o cabeçalho contra as colunas
// obrigatórias. O erro de colunas ausentes nomeia cada coluna faltante.
func readCSVFile(path string, requiredColumns []string) (map[string]int, [][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, errors.Wrapf(err, "arquivo de dataset não encontrado: %s", path)
		}
		return nil, nil, errors.Wrapf(err, "erro ao abrir o arquivo %s", path)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, errors.Wrapf(err, "erro ao ler o CSV %s", path)
	}

	if len(records) == 0 {
		return nil, nil, fmt.Errorf("arquivo CSV vazio, sem cabeçalho: %s", path)
	}

	header := records[0]
	index := make(map[string]int, len(header))
	for i, column := range header {
		index[column] = i
	}

	var missing []string
	for _, column := range requiredColumns {
		if _, ok := index[column]; !ok {
			missing = append(missing, column)
		}
	}
	if len(missing) > 0 {
		return nil, nil, fmt.Errorf("colunas obrigatórias ausentes em %s: %s", filepath.Base(path), strings.Join(missing, ", "))
	}

	return index, records[1:], nil
}

// writeCSVFile grava cabeçalho e linhas, criando o diretório se necessário
func writeCSVFile(path string, header []string, rows [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "erro ao criar o diretório de datasets %s", filepath.Dir(path))
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "erro ao criar o arquivo %s", path)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		return errors.Wrapf(err, "erro ao gravar o cabeçalho de %s", path)
	}
	if err := writer.WriteAll(rows); err != nil {
		return errors.Wrapf(err, "erro ao gravar as linhas de %s", path)
	}

	writer.Flush()
	return writer.Error()
}

// rowReader dá acesso nomeado às colunas de uma linha, com erros que apontam
// linha e coluna do valor malformado
type rowReader struct {
	index map[string]int
	row   []string
	line  int
}

func (r rowReader) value(column string) string {
	idx, ok := r.index[column]
	if !ok || idx >= len(r.row) {
		return ""
	}
	return r.row[idx]
}

func (r rowReader) stringField(column string) string {
	return r.value(column)
}

func (r rowReader) floatField(column string) (float64, error) {
	raw := r.value(column)
	if raw == "" {
		return 0, nil
	}

	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("valor inválido na linha %d, coluna %s: %q", r.line, column, raw)
	}
	return parsed, nil
}

func (r rowReader) intField(column string) (int, error) {
	raw := r.value(column)
	if raw == "" {
		return 0, nil
	}

	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("valor inválido na linha %d, coluna %s: %q", r.line, column, raw)
	}
	return parsed, nil
}

func (r rowReader) boolField(column string) (bool, error) {
	raw := r.value(column)
	if raw == "" {
		return false, nil
	}

	parsed, err := strconv.ParseBool(strings.ToLower(raw))
	if err != nil {
		return false, fmt.Errorf("valor inválido na linha %d, coluna %s: %q", r.line, column, raw)
	}
	return parsed, nil
}

func (r rowReader) dateField(column string) (time.Time, error) {
	raw := r.value(column)
	if raw == "" {
		return time.Time{}, nil
	}

	parsed, err := time.Parse(csvDateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("data inválida na linha %d, coluna %s: %q", r.line, column, raw)
	}
	return parsed, nil
}

func (r rowReader) optionalDateField(column string) (*time.Time, error) {
	raw := r.value(column)
	if raw == "" {
		return nil, nil
	}

	parsed, err := r.dateField(column)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func formatInt(value int) string {
	return strconv.Itoa(value)
}

func formatBool(value bool) string {
	return strconv.FormatBool(value)
}

func formatDate(value time.Time) string {
	return value.Format(csvDateLayout)
}

func formatOptionalDate(value *time.Time) string {
	if value == nil {
		return ""
	}
	return value.Format(csvDateLayout)
}
