package sqlc

import (
	"net"
	"time"

	"github.com/sqlc-dev/pqtype"
)

const (
	QuerierCtxTimeout = time.Second * 10
)

type DbManager struct {
	Records *GameRecordManager
}

func NewDbManager(queries Querier, serverIpNet net.IPNet) DbManager {
	return DbManager{
		Records: NewGameRecordManager(queries, pqtype.Inet{IPNet: serverIpNet, Valid: true}),
	}
}
