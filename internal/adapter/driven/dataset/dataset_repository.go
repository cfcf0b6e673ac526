package dataset

import (
	"context"
	"fmt"
	"os"
	"path"
	"strings"
	"sync"

	"github.com/diillson/sales-dashboard-go/internal/domain/entity"
	"github.com/diillson/sales-dashboard-go/internal/domain/repository"
	"github.com/diillson/sales-dashboard-go/internal/shared/types"
)

// DatasetRepositoryImpl implementa o DatasetRepository para arquivos locais
// e objetos no S3.
type DatasetRepositoryImpl struct {
	newS3Client func(ctx context.Context, profile, region string) (s3ObjectGetter, error)

	// clientes S3 por profile/region
	s3Clients map[string]s3ObjectGetter
	mu        sync.Mutex
}

// NewDatasetRepository cria o repositório.
func NewDatasetRepository() repository.DatasetRepository {
	return &DatasetRepositoryImpl{
		newS3Client: loadS3Client,
		s3Clients:   make(map[string]s3ObjectGetter),
	}
}

// LoadDataset reads the whole source and converts it into a typed Dataset.
// The format is picked from the file extension (.xlsx, .xlsm or .csv).
func (r *DatasetRepositoryImpl) LoadDataset(ctx context.Context, src repository.DatasetSource) (entity.Dataset, error) {
	source, sheet := src.Location, src.Sheet
	if source == "" {
		return entity.Dataset{}, types.ErrNoDatasetSource
	}

	data, err := r.readSource(ctx, src)
	if err != nil {
		return entity.Dataset{}, err
	}

	var rows [][]string
	switch ext := strings.ToLower(path.Ext(source)); ext {
	case ".xlsx", ".xlsm":
		rows, err = parseXLSX(data, sheet)
	case ".csv":
		rows, err = parseCSV(data)
	default:
		return entity.Dataset{}, fmt.Errorf("unsupported dataset format: %q", ext)
	}
	if err != nil {
		return entity.Dataset{}, fmt.Errorf("%s: %w", source, err)
	}

	return buildDataset(source, rows)
}

func (r *DatasetRepositoryImpl) readSource(ctx context.Context, src repository.DatasetSource) ([]byte, error) {
	source := src.Location
	if isS3URI(source) {
		return r.fetchS3Object(ctx, src)
	}

	// Verifica se o arquivo existe
	fileInfo, err := os.Stat(source)
	if err != nil {
		return nil, fmt.Errorf("error accessing dataset file: %w", err)
	}
	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", source)
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("error reading dataset file: %w", err)
	}
	return data, nil
}
