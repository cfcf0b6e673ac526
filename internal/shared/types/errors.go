package types

import "errors"

var (
	ErrNoDatasetSource = errors.New("no dataset given. Use --file, set SALES_DASHBOARD_FILE or add 'file' to the config file")
	ErrEmptyDataset    = errors.New("the dataset has no records")
)
