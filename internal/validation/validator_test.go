package validation

import (
	"testing"

	"github.com/diillson/sales-dashboard-go/internal/shared/types"
	"github.com/stretchr/testify/suite"
)

type ValidatorTestSuite struct {
	suite.Suite
	v *Validator
}

func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}

func (s *ValidatorTestSuite) SetupTest() {
	s.v = NewValidator()
}

func validArgs() types.CLIArgs {
	return types.CLIArgs{
		File:       "sales.xlsx",
		GroupBy:    "sub-category",
		Metric:     "sales",
		MapMetric:  "Profit",
		ReportType: []string{"csv", "pdf"},
	}
}

func (s *ValidatorTestSuite) TestValidArgs() {
	args := validArgs()
	s.NoError(s.v.Struct(args))
}

func (s *ValidatorTestSuite) TestInvalidArgs() {
	testCases := []struct {
		name   string
		mutate func(*types.CLIArgs)
		want   string
	}{
		{
			name:   "missing file",
			mutate: func(a *types.CLIArgs) { a.File = "" },
			want:   "--file is required",
		},
		{
			name:   "numeric group key",
			mutate: func(a *types.CLIArgs) { a.GroupBy = "Sales" },
			want:   `--group-by "Sales" is not a groupable column`,
		},
		{
			name:   "unknown metric",
			mutate: func(a *types.CLIArgs) { a.Metric = "Revenue" },
			want:   `--metric "Revenue" must be Sales or Profit`,
		},
		{
			name:   "unknown report type",
			mutate: func(a *types.CLIArgs) { a.ReportType = []string{"xml"} },
			want:   "must be one of: csv json pdf sqlite",
		},
		{
			name:   "negative preview",
			mutate: func(a *types.CLIArgs) { a.PreviewRows = -1 },
			want:   "--preview-rows -1 is out of range",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			args := validArgs()
			tc.mutate(&args)
			err := s.v.Struct(args)
			s.Require().Error(err)
			s.Contains(err.Error(), tc.want)
		})
	}
}

func (s *ValidatorTestSuite) TestConfigUsesFileKeys() {
	err := s.v.Struct(types.Config{Metric: "margin"})
	s.Require().Error(err)
	s.Contains(err.Error(), `metric "margin"`)
}
