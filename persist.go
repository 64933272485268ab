package main

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Persistence keys. Structured values are stored as JSON.
const (
	keyCurrentColor   = "currentColor"
	keyCurrentHsv     = "currentHsv"
	keySelectedFormat = "selectedFormat"
	keyManualInput    = "manualInput"
	keyColorHistory   = "colorHistory"
	keyGradientStop1  = "gradientStop1"
	keyGradientStop2  = "gradientStop2"
	keyGradientPos1   = "gradientPos1"
	keyGradientPos2   = "gradientPos2"
	keyGradientType   = "gradientType"
	keyGradientParam  = "gradientParam"
)

var ErrUnknownBackend = errors.New("unknown state backend")

// KV is a string key-value store. A missing key is not an error.
type KV interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Remove(key string) error
}

// batchSetter is implemented by stores that can write several keys at once.
type batchSetter interface {
	SetMany(values map[string]string) error
}

func closeKV(kv KV) error {
	if c, ok := kv.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// openKV opens the backend named in the config.
func openKV(cfg *Config) (KV, error) {
	switch cfg.StateBackend {
	case "memory":
		return newMemoryKV(), nil
	case "", "file":
		return openFileKV(cfg.statePath("state.json"))
	case "sqlite":
		return openSQLiteKV(cfg.statePath("state.db"))
	}
	return nil, errors.Wrapf(ErrUnknownBackend, "%q", cfg.StateBackend)
}

type memoryKV struct {
	data map[string]string
}

func newMemoryKV() *memoryKV {
	return &memoryKV{data: make(map[string]string)}
}

func (m *memoryKV) Get(key string) (string, bool) {
	v, ok := m.data[key]
	return v, ok
}

func (m *memoryKV) Set(key, value string) error {
	m.data[key] = value
	return nil
}

func (m *memoryKV) Remove(key string) error {
	delete(m.data, key)
	return nil
}

// fileKV keeps all keys in one JSON object file that is rewritten on
// every change.
type fileKV struct {
	path string
	data map[string]string
}

// openFileKV loads path. A missing or unreadable file starts empty.
func openFileKV(path string) (*fileKV, error) {
	kv := &fileKV{path: path, data: make(map[string]string)}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return kv, nil
		}
		return nil, errors.Wrap(err, "read state file")
	}
	if err := json.Unmarshal(raw, &kv.data); err != nil {
		errorPrint("state file", path, "is corrupt, starting fresh:", err)
		kv.data = make(map[string]string)
	}
	return kv, nil
}

func (f *fileKV) Get(key string) (string, bool) {
	v, ok := f.data[key]
	return v, ok
}

func (f *fileKV) Set(key, value string) error {
	f.data[key] = value
	return f.flush()
}

func (f *fileKV) SetMany(values map[string]string) error {
	for k, v := range values {
		f.data[k] = v
	}
	return f.flush()
}

func (f *fileKV) Remove(key string) error {
	if _, ok := f.data[key]; !ok {
		return nil
	}
	delete(f.data, key)
	return f.flush()
}

// flush writes to a temp file next to the target and renames it over.
func (f *fileKV) flush() error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "create state directory")
	}
	raw, err := json.MarshalIndent(f.data, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode state")
	}
	tmp := filepath.Join(dir, "."+filepath.Base(f.path)+"."+uuid.NewString()+".tmp")
	if err := os.WriteFile(tmp, raw, 0644); err != nil {
		return errors.Wrap(err, "write state")
	}
	if err := os.Rename(tmp, f.path); err != nil {
		os.Remove(tmp)
		return errors.Wrap(err, "replace state file")
	}
	return nil
}

type setting struct {
	Name  string `gorm:"primaryKey"`
	Value string
}

func (setting) TableName() string {
	return "settings"
}

// sqliteKV stores keys as rows of a settings table.
type sqliteKV struct {
	db *gorm.DB
}

func openSQLiteKV(path string) (*sqliteKV, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errors.Wrap(err, "create state directory")
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errors.Wrap(err, "open state database")
	}
	if err := db.AutoMigrate(&setting{}); err != nil {
		return nil, errors.Wrap(err, "migrate state database")
	}
	return &sqliteKV{db: db}, nil
}

func (s *sqliteKV) Get(key string) (string, bool) {
	var row setting
	err := s.db.Where("name = ?", key).Take(&row).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			errorPrint("state lookup", key, err)
		}
		return "", false
	}
	return row.Value, true
}

func upsert(db *gorm.DB, key, value string) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&setting{Name: key, Value: value}).Error
}

func (s *sqliteKV) Set(key, value string) error {
	return errors.Wrapf(upsert(s.db, key, value), "store %s", key)
}

func (s *sqliteKV) SetMany(values map[string]string) error {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, k := range keys {
			if err := upsert(tx, k, values[k]); err != nil {
				return errors.Wrapf(err, "store %s", k)
			}
		}
		return nil
	})
}

func (s *sqliteKV) Remove(key string) error {
	return errors.Wrapf(s.db.Where("name = ?", key).Delete(&setting{}).Error, "remove %s", key)
}

func (s *sqliteKV) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// snapshot is the persisted picture of the store.
type snapshot struct {
	Color       RGBA
	HSV         HSV
	Format      Format
	ManualInput string
	History     []string
	Stop1       RGBA
	Stop2       RGBA
	Pos1        string
	Pos2        string
	Kind        GradientKind
	Param       string
}

func defaultSnapshot() snapshot {
	return snapshot{
		Color:  defaultColor,
		HSV:    RGBToHSV(defaultColor.R, defaultColor.G, defaultColor.B),
		Format: FormatHex,
		Stop1:  defaultColor,
		Stop2:  defaultStop2,
		Pos1:   defaultGradientPos1,
		Pos2:   defaultGradientPos2,
		Kind:   GradientLinear,
		Param:  defaultGradientParam,
	}
}

func (s snapshot) values() (map[string]string, error) {
	color, err := json.Marshal(s.Color)
	if err != nil {
		return nil, errors.Wrap(err, "encode color")
	}
	hsv, err := json.Marshal(s.HSV)
	if err != nil {
		return nil, errors.Wrap(err, "encode hsv")
	}
	history := s.History
	if history == nil {
		history = []string{}
	}
	hist, err := json.Marshal(history)
	if err != nil {
		return nil, errors.Wrap(err, "encode history")
	}
	return map[string]string{
		keyCurrentColor:   string(color),
		keyCurrentHsv:     string(hsv),
		keySelectedFormat: s.Format.String(),
		keyManualInput:    s.ManualInput,
		keyColorHistory:   string(hist),
		keyGradientStop1:  RGBAString(s.Stop1),
		keyGradientStop2:  RGBAString(s.Stop2),
		keyGradientPos1:   s.Pos1,
		keyGradientPos2:   s.Pos2,
		keyGradientType:   s.Kind.String(),
		keyGradientParam:  s.Param,
	}, nil
}

// saveSnapshot writes every key, in one batch when the store supports it.
func saveSnapshot(kv KV, s snapshot) error {
	values, err := s.values()
	if err != nil {
		return err
	}
	if b, ok := kv.(batchSetter); ok {
		return b.SetMany(values)
	}
	for k, v := range values {
		if err := kv.Set(k, v); err != nil {
			return errors.Wrapf(err, "store %s", k)
		}
	}
	return nil
}

// loadSnapshot reads every key. Missing or malformed values fall back to
// their defaults one by one.
func loadSnapshot(kv KV) snapshot {
	s := defaultSnapshot()

	colorOK := false
	if raw, ok := kv.Get(keyCurrentColor); ok {
		var c RGBA
		if err := json.Unmarshal([]byte(raw), &c); err == nil {
			s.Color = c
			colorOK = true
		} else {
			debugPrint("ignoring stored color:", err)
		}
	}
	hsvOK := false
	if raw, ok := kv.Get(keyCurrentHsv); ok {
		var hsv HSV
		if err := json.Unmarshal([]byte(raw), &hsv); err == nil {
			s.HSV = hsv
			hsvOK = true
		} else {
			debugPrint("ignoring stored hsv:", err)
		}
	}
	switch {
	case !colorOK:
		// HSV alone cannot stand in for the default color.
		s.HSV = defaultSnapshot().HSV
	case !hsvOK || !(Color{HSV: s.HSV, RGBA: s.Color}).consistent():
		s.HSV = ColorFromRGBA(s.Color, s.HSV.H).HSV
	}

	if raw, ok := kv.Get(keySelectedFormat); ok {
		s.Format = ParseFormat(raw)
	}
	if raw, ok := kv.Get(keyManualInput); ok {
		s.ManualInput = raw
	}
	if raw, ok := kv.Get(keyColorHistory); ok {
		var hist []string
		if err := json.Unmarshal([]byte(raw), &hist); err == nil {
			s.History = hist
		} else {
			debugPrint("ignoring stored history:", err)
		}
	}
	if raw, ok := kv.Get(keyGradientStop1); ok {
		if p, ok := ParseColor(raw); ok {
			s.Stop1 = p.RGBA
		}
	}
	if raw, ok := kv.Get(keyGradientStop2); ok {
		if p, ok := ParseColor(raw); ok {
			s.Stop2 = p.RGBA
		}
	}
	if raw, ok := kv.Get(keyGradientPos1); ok && raw != "" {
		s.Pos1 = raw
	}
	if raw, ok := kv.Get(keyGradientPos2); ok && raw != "" {
		s.Pos2 = raw
	}
	if raw, ok := kv.Get(keyGradientType); ok {
		if k, ok := ParseGradientKind(raw); ok {
			s.Kind = k
		}
	}
	if raw, ok := kv.Get(keyGradientParam); ok && raw != "" {
		s.Param = raw
	}
	return s
}
