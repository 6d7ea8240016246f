package repository

import (
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revops-analytics-api/internal/domain"
)

// PipelineFileName é o nome do arquivo da tabela de pipeline
const PipelineFileName = "pipeline_deals.csv"

var pipelineColumns = []string{
	"deal_id", "account", "segment", "owner", "stage",
	"amount", "created_at", "expected_close", "last_stage_change",
	"days_in_stage", "probability", "expected_value", "status", "source_channel",
}

// PipelineRepository dá acesso à tabela de negócios do pipeline
type PipelineRepository interface {
	List() ([]domain.PipelineDeal, error)
	SaveAll(deals []domain.PipelineDeal) error
	Invalidate()
}

type pipelineRepository struct {
	path  string
	mu    sync.Mutex
	cache []domain.PipelineDeal
}

// NewPipelineRepository cria um repositório CSV da tabela de pipeline
func NewPipelineRepository(path string) PipelineRepository {
	return &pipelineRepository{path: path}
}

func (r *pipelineRepository) List() ([]domain.PipelineDeal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cache != nil {
		return r.cache, nil
	}

	index, rows, err := readCSVFile(r.path, pipelineColumns)
	if err != nil {
		return nil, err
	}

	deals := make([]domain.PipelineDeal, 0, len(rows))
	for i, row := range rows {
		reader := rowReader{index: index, row: row, line: i + 2}

		deal := domain.PipelineDeal{
			DealID:        reader.stringField("deal_id"),
			Account:       reader.stringField("account"),
			Segment:       reader.stringField("segment"),
			Owner:         reader.stringField("owner"),
			Stage:         reader.stringField("stage"),
			Status:        reader.stringField("status"),
			SourceChannel: reader.stringField("source_channel"),
		}

		if deal.Amount, err = reader.floatField("amount"); err != nil {
			return nil, err
		}
		if deal.CreatedAt, err = reader.dateField("created_at"); err != nil {
			return nil, err
		}
		if deal.ExpectedClose, err = reader.dateField("expected_close"); err != nil {
			return nil, err
		}
		if deal.LastStageChange, err = reader.dateField("last_stage_change"); err != nil {
			return nil, err
		}
		if deal.DaysInStage, err = reader.intField("days_in_stage"); err != nil {
			return nil, err
		}
		if deal.Probability, err = reader.floatField("probability"); err != nil {
			return nil, err
		}
		if deal.ExpectedValue, err = reader.floatField("expected_value"); err != nil {
			return nil, err
		}

		deals = append(deals, deal)
	}

	r.cache = deals
	logrus.WithFields(logrus.Fields{
		"path": r.path,
		"rows": len(deals),
	}).Debug("Tabela de pipeline carregada")

	return deals, nil
}

func (r *pipelineRepository) SaveAll(deals []domain.PipelineDeal) error {
	rows := make([][]string, 0, len(deals))
	for _, deal := range deals {
		rows = append(rows, []string{
			deal.DealID,
			deal.Account,
			deal.Segment,
			deal.Owner,
			deal.Stage,
			formatFloat(deal.Amount),
			formatDate(deal.CreatedAt),
			formatDate(deal.ExpectedClose),
			formatDate(deal.LastStageChange),
			formatInt(deal.DaysInStage),
			formatFloat(deal.Probability),
			formatFloat(deal.ExpectedValue),
			deal.Status,
			deal.SourceChannel,
		})
	}

	if err := writeCSVFile(r.path, pipelineColumns, rows); err != nil {
		return err
	}

	r.Invalidate()
	return nil
}

func (r *pipelineRepository) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache = nil
}
