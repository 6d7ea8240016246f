package repository

import (
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revops-analytics-api/internal/domain"
)

// RevenueFileName é o nome do arquivo da tabela de receita
const RevenueFileName = "revenue_customers.csv"

var revenueColumns = []string{
	"customer_id", "account", "segment", "plan", "start_date",
	"mrr", "new_mrr", "expansion_mrr", "contraction_mrr",
	"churned_flag", "churn_date", "churn_reason", "arpa", "nrr",
}

// RevenueRepository dá acesso à tabela de clientes de receita
type RevenueRepository interface {
	List() ([]domain.RevenueCustomer, error)
	SaveAll(customers []domain.RevenueCustomer) error
	Invalidate()
}

type revenueRepository struct {
	path  string
	mu    sync.Mutex
	cache []domain.RevenueCustomer
}

// NewRevenueRepository cria um repositório CSV da tabela de receita
func NewRevenueRepository(path string) RevenueRepository {
	return &revenueRepository{path: path}
}

func (r *revenueRepository) List() ([]domain.RevenueCustomer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cache != nil {
		return r.cache, nil
	}

	index, rows, err := readCSVFile(r.path, revenueColumns)
	if err != nil {
		return nil, err
	}

	customers := make([]domain.RevenueCustomer, 0, len(rows))
	for i, row := range rows {
		reader := rowReader{index: index, row: row, line: i + 2}

		customer := domain.RevenueCustomer{
			CustomerID:  reader.stringField("customer_id"),
			Account:     reader.stringField("account"),
			Segment:     reader.stringField("segment"),
			Plan:        reader.stringField("plan"),
			ChurnReason: reader.stringField("churn_reason"),
		}

		if customer.StartDate, err = reader.dateField("start_date"); err != nil {
			return nil, err
		}
		if customer.MRR, err = reader.floatField("mrr"); err != nil {
			return nil, err
		}
		if customer.NewMRR, err = reader.floatField("new_mrr"); err != nil {
			return nil, err
		}
		if customer.ExpansionMRR, err = reader.floatField("expansion_mrr"); err != nil {
			return nil, err
		}
		if customer.ContractionMRR, err = reader.floatField("contraction_mrr"); err != nil {
			return nil, err
		}
		if customer.ChurnedFlag, err = reader.boolField("churned_flag"); err != nil {
			return nil, err
		}
		if customer.ChurnDate, err = reader.optionalDateField("churn_date"); err != nil {
			return nil, err
		}
		if customer.ARPA, err = reader.floatField("arpa"); err != nil {
			return nil, err
		}
		if customer.NRR, err = reader.floatField("nrr"); err != nil {
			return nil, err
		}

		customers = append(customers, customer)
	}

	r.cache = customers
	logrus.WithFields(logrus.Fields{
		"path": r.path,
		"rows": len(customers),
	}).Debug("Tabela de receita carregada")

	return customers, nil
}

func (r *revenueRepository) SaveAll(customers []domain.RevenueCustomer) error {
	rows := make([][]string, 0, len(customers))
	for _, customer := range customers {
		rows = append(rows, []string{
			customer.CustomerID,
			customer.Account,
			customer.Segment,
			customer.Plan,
			formatDate(customer.StartDate),
			formatFloat(customer.MRR),
			formatFloat(customer.NewMRR),
			formatFloat(customer.ExpansionMRR),
			formatFloat(customer.ContractionMRR),
			formatBool(customer.ChurnedFlag),
			formatOptionalDate(customer.ChurnDate),
			customer.ChurnReason,
			formatFloat(customer.ARPA),
			formatFloat(customer.NRR),
		})
	}

	if err := writeCSVFile(r.path, revenueColumns, rows); err != nil {
		return err
	}

	r.Invalidate()
	return nil
}

func (r *revenueRepository) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache = nil
}
