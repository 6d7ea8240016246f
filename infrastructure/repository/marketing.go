package repository

import (
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revops-analytics-api/internal/domain"
)

// MarketingFileName é o nome do arquivo da tabela de marketing
const MarketingFileName = "marketing_channels.csv"

// marketingColumns preserva a capitalização original das colunas
var marketingColumns = []string{
	"date", "channel", "campaign", "segment", "geo",
	"spend", "impressions", "clicks", "leads",
	"MQLs", "SQLs", "opportunities", "closed_won",
	"CAC", "CPL", "CTR", "CVR_stagewise", "ROI",
}

// MarketingRepository dá acesso à tabela de marketing
type MarketingRepository interface {
	List() ([]domain.MarketingRecord, error)
	SaveAll(records []domain.MarketingRecord) error
	Invalidate()
}

type marketingRepository struct {
	path  string
	mu    sync.Mutex
	cache []domain.MarketingRecord
}

// NewMarketingRepository cria um repositório CSV da tabela de marketing
func NewMarketingRepository(path string) MarketingRepository {
	return &marketingRepository{path: path}
}

// List carrega a tabela, memoizando o resultado até a próxima invalidação
func (r *marketingRepository) List() ([]domain.MarketingRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cache != nil {
		return r.cache, nil
	}

	index, rows, err := readCSVFile(r.path, marketingColumns)
	if err != nil {
		return nil, err
	}

	records := make([]domain.MarketingRecord, 0, len(rows))
	for i, row := range rows {
		reader := rowReader{index: index, row: row, line: i + 2}

		record := domain.MarketingRecord{
			Channel:  reader.stringField("channel"),
			Campaign: reader.stringField("campaign"),
			Segment:  reader.stringField("segment"),
			Geo:      reader.stringField("geo"),
		}

		if record.Date, err = reader.dateField("date"); err != nil {
			return nil, err
		}
		if record.Spend, err = reader.floatField("spend"); err != nil {
			return nil, err
		}
		if record.Impressions, err = reader.intField("impressions"); err != nil {
			return nil, err
		}
		if record.Clicks, err = reader.intField("clicks"); err != nil {
			return nil, err
		}
		if record.Leads, err = reader.intField("leads"); err != nil {
			return nil, err
		}
		if record.MQLs, err = reader.intField("MQLs"); err != nil {
			return nil, err
		}
		if record.SQLs, err = reader.intField("SQLs"); err != nil {
			return nil, err
		}
		if record.Opportunities, err = reader.intField("opportunities"); err != nil {
			return nil, err
		}
		if record.ClosedWon, err = reader.intField("closed_won"); err != nil {
			return nil, err
		}
		if record.CAC, err = reader.floatField("CAC"); err != nil {
			return nil, err
		}
		if record.CPL, err = reader.floatField("CPL"); err != nil {
			return nil, err
		}
		if record.CTR, err = reader.floatField("CTR"); err != nil {
			return nil, err
		}
		if record.CVRStagewise, err = reader.floatField("CVR_stagewise"); err != nil {
			return nil, err
		}
		if record.ROI, err = reader.floatField("ROI"); err != nil {
			return nil, err
		}

		records = append(records, record)
	}

	r.cache = records
	logrus.WithFields(logrus.Fields{
		"path": r.path,
		"rows": len(records),
	}).Debug("Tabela de marketing carregada")

	return records, nil
}

// SaveAll grava a tabela e invalida o cache de leitura
func (r *marketingRepository) SaveAll(records []domain.MarketingRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			formatDate(record.Date),
			record.Channel,
			record.Campaign,
			record.Segment,
			record.Geo,
			formatFloat(record.Spend),
			formatInt(record.Impressions),
			formatInt(record.Clicks),
			formatInt(record.Leads),
			formatInt(record.MQLs),
			formatInt(record.SQLs),
			formatInt(record.Opportunities),
			formatInt(record.ClosedWon),
			formatFloat(record.CAC),
			formatFloat(record.CPL),
			formatFloat(record.CTR),
			formatFloat(record.CVRStagewise),
			formatFloat(record.ROI),
		})
	}

	if err := writeCSVFile(r.path, marketingColumns, rows); err != nil {
		return err
	}

	r.Invalidate()
	return nil
}

// Invalidate descarta o cache de leitura
func (r *marketingRepository) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache = nil
}
