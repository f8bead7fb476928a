package checkpoint

import (
	"encoding/json"
	"hash/fnv"

	"github.com/dgraph-io/badger/v4"

	"github.com/rectguillotine/solver/internal/instance"
	"github.com/rectguillotine/solver/internal/solution"
)

// Run is the persisted state for one instance: the best solution found
// so far and how much search work produced it.
type Run struct {
	NodesExplored uint64             `json:"nodes_explored"`
	Solution      *solution.Solution `json:"solution"`
}

// Store wraps BadgerDB for persisting incumbents across restarts.
// Grounded on hailam-chessplay/internal/storage.Storage, repurposed
// from user preferences/game stats to per-instance run checkpoints.
type Store struct {
	db *badger.DB
}

// Open opens (creating if needed) the checkpoint database at the
// platform-specific data directory.
func Open() (*Store, error) {
	dir, err := DatabaseDir()
	if err != nil {
		return nil, err
	}
	return OpenAt(dir)
}

// OpenAt opens the checkpoint database at an explicit directory;
// exposed separately so tests can point it at a temp directory.
func OpenAt(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Save persists run under inst's hash, overwriting any prior checkpoint.
func (s *Store) Save(inst *instance.Instance, run Run) error {
	data, err := json.Marshal(run)
	if err != nil {
		return err
	}
	key := instanceKey(inst)
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, data)
	})
}

// Load returns the checkpointed run for inst, if any.
func (s *Store) Load(inst *instance.Instance) (*Run, bool, error) {
	key := instanceKey(inst)
	var run Run
	found := false

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &run)
		})
	})
	if err != nil {
		return nil, false, err
	}
	if !found {
		return nil, false, nil
	}
	return &run, true, nil
}

// instanceKey hashes the structural content of inst (item dimensions,
// bin dimensions, defect positions) into a stable key: same instance,
// same key, regardless of run-to-run allocation order.
func instanceKey(inst *instance.Instance) []byte {
	h := fnv.New64a()
	for j := 0; j < inst.ItemTypeNumber(); j++ {
		it := inst.Item(instance.ItemTypeId(j))
		writeInt64(h, int64(it.Stack))
		writeInt64(h, int64(it.Pos))
		writeInt64(h, it.W)
		writeInt64(h, it.H)
		writeInt64(h, it.Profit)
		writeInt64(h, int64(it.Copies))
	}
	for i := 0; i < inst.BinNumber(); i++ {
		b := inst.Bin(instance.BinPos(i))
		writeInt64(h, b.W)
		writeInt64(h, b.H)
		writeInt64(h, int64(b.Copies))
		for _, d := range b.Defects {
			writeInt64(h, d.Rect.X)
			writeInt64(h, d.Rect.Y)
			writeInt64(h, d.Rect.W)
			writeInt64(h, d.Rect.H)
		}
	}
	sum := h.Sum(nil)
	return append([]byte("run:"), sum...)
}

func writeInt64(h interface{ Write([]byte) (int, error) }, v int64) {
	var buf [8]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(v >> (8 * i))
	}
	_, _ = h.Write(buf[:])
}
