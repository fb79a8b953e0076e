package database

import (
	"errors"

	oracle "github.com/godoes/gorm-oracle"
	"github.com/sijms/go-ora/v2/network"
	"gorm.io/gorm"
)

// ORA-00001 unique constraint violated
const oracleUniqueViolation = 1

// oracleDialector adds gorm.ErrorTranslator to the Oracle dialector so TranslateError covers it
type oracleDialector struct {
	oracle.Dialector
}

func openOracle(dsn string) gorm.Dialector {
	return oracleDialector{Dialector: oracle.Dialector{Config: &oracle.Config{DSN: dsn}}}
}

// Translate maps unique index violations to gorm.ErrDuplicatedKey
func (d oracleDialector) Translate(err error) error {
	var oraErr *network.OracleError
	if errors.As(err, &oraErr) && oraErr.ErrCode == oracleUniqueViolation {
		return gorm.ErrDuplicatedKey
	}
	return err
}
