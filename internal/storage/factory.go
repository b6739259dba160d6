package storage

import (
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/dailydeck/internal/common"
	"github.com/ternarybob/dailydeck/internal/interfaces"
	"github.com/ternarybob/dailydeck/internal/storage/badger"
	"github.com/ternarybob/dailydeck/internal/storage/memory"
)

// NewKeyValueStorage opens the durable Badger-backed store. If the database
// cannot be opened the app must keep working rather than crash, so this
// degrades to an in-memory store and reports the error to the caller for a
// user-visible notification; reads start empty and writes stop surviving
// restarts.
func NewKeyValueStorage(logger arbor.ILogger, config *common.Config) (interfaces.KeyValueStorage, error) {
	db, err := badger.NewDB(logger, &config.Storage.Badger)
	if err != nil {
		logger.Warn().Err(err).
			Str("path", config.Storage.Badger.Path).
			Msg("Durable storage unavailable, falling back to in-memory store")
		return memory.NewKVStorage(), err
	}
	return badger.NewKVStorage(db, logger), nil
}
