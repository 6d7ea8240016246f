package main

import (
	"flag"
	"fmt"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revops-analytics-api/infrastructure/repository"
	"github.com/vfg2006/revops-analytics-api/internal/config"
	"github.com/vfg2006/revops-analytics-api/internal/usecases/generating"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	outputDir := flag.String("output", "", "diretório de saída dos CSVs (padrão: DATASET_DIR da configuração)")
	seed := flag.Int64("seed", 0, "seed de geração (padrão: GENERATOR_SEED da configuração)")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	params := generating.FromConfig(cfg)
	if *seed != 0 {
		params.Seed = *seed
	}

	dir := cfg.Dataset.Dir
	if *outputDir != "" {
		dir = *outputDir
	}

	generator := generating.NewService(params)
	datasets := repository.NewDatasets(dir)

	if err := datasets.SaveAll(generator.All()); err != nil {
		logrus.WithError(err).Fatal("Erro ao gravar os datasets")
	}

	for _, name := range []string{
		repository.MarketingFileName,
		repository.PipelineFileName,
		repository.RevenueFileName,
		repository.BenchmarkFileName,
	} {
		fmt.Println(filepath.Join(dir, name))
	}
}
