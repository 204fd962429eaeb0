package summary

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPeriod = errors.New(`period must be "today" or "week"`)
	ErrTooManyTasks  = fmt.Errorf("at most %d tasks can be summarized at once", MaxTasks)
)
