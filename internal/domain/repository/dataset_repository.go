package repository

import (
	"context"

	"github.com/diillson/sales-dashboard-go/internal/domain/entity"
)

// DatasetSource identifica de onde vêm os dados de uma sessão.
type DatasetSource struct {
	// Location is a local path or s3://bucket/key.
	Location string
	// Sheet selects the worksheet of a spreadsheet; empty means the first one.
	Sheet string
	// AWSProfile and AWSRegion are only used for s3:// locations.
	AWSProfile string
	AWSRegion  string
}

// DatasetRepository loads the sales dataset a session works on.
type DatasetRepository interface {
	LoadDataset(ctx context.Context, src DatasetSource) (entity.Dataset, error)
}
