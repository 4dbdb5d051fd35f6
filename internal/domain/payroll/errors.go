package payroll

import "errors"

var ErrSlipNotFound = errors.New("no submitted salary slip")
