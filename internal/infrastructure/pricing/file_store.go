package pricing

import (
	"bytes"
	"context"
	stdjson "encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
	"github.com/patrickmn/go-cache"

	"verify_gateway/internal/domain"
	"verify_gateway/internal/domain/entity"
	"verify_gateway/pkg/contextx"
	"verify_gateway/pkg/errcodes"
	"verify_gateway/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const (
	cacheKeySnapshot = "snapshot"
	filePerm         = 0o644
)

// FileStore хранит снимок цен в JSON файле и держит последний снимок в кэше.
// Файл перезаписывается целиком через временный файл и rename, поэтому
// читатель никогда не видит частично записанный снимок.
type FileStore struct {
	path  string
	cache *cache.Cache
}

func NewFileStore(path string, snapshots *cache.Cache) *FileStore {
	return &FileStore{
		path:  path,
		cache: snapshots,
	}
}

func (s *FileStore) Save(ctx context.Context, fixture entity.PricingFixture) error {
	b, err := encodeSnapshot(fixture)
	if err != nil {
		return domain.WrapError(err, errcodes.PricingStoreError, "failed to encode prices")
	}

	if err = s.writeFile(b); err != nil {
		return domain.WrapError(err, errcodes.PricingStoreError, "failed to write prices file")
	}

	s.cache.SetDefault(cacheKeySnapshot, fixture)

	logger(ctx).Debug("prices file written", slog.String(logx.FieldPricesFile, s.path))

	return nil
}

func (s *FileStore) Load(ctx context.Context) (entity.PricingFixture, error) {
	if cached, ok := s.cache.Get(cacheKeySnapshot); ok {
		if fixture, ok := cached.(entity.PricingFixture); ok {
			return fixture, nil
		}
	}

	b, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, domain.WrapError(err, errcodes.PricesNotFound, "prices have not been published yet")
	}

	if err != nil {
		return nil, domain.WrapError(err, errcodes.PricingStoreError, "failed to read prices")
	}

	var schema pricesSchema

	if err = json.Unmarshal(b, &schema); err != nil {
		return nil, domain.WrapError(err, errcodes.InvalidPricingSnapshot, "prices file is corrupted")
	}

	fixture := schema.toDomain()

	s.cache.SetDefault(cacheKeySnapshot, fixture)

	logger(ctx).Debug("prices file loaded", slog.String(logx.FieldPricesFile, s.path))

	return fixture, nil
}

// encodeSnapshot сериализует прайс с отступом в два пробела. Ключи map
// сортируются, одинаковые цены дают байт-в-байт одинаковый файл.
// jsoniter не расставляет отступы во вложенных map, поэтому отступы
// делает encoding/json.Indent.
func encodeSnapshot(fixture entity.PricingFixture) ([]byte, error) {
	compact, err := json.Marshal(newPricesSchema(fixture))
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}

	var buf bytes.Buffer

	if err = stdjson.Indent(&buf, compact, "", "  "); err != nil {
		return nil, fmt.Errorf("json.Indent: %w", err)
	}

	return buf.Bytes(), nil
}

func (s *FileStore) writeFile(b []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), "."+filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("os.CreateTemp: %w", err)
	}

	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(b); err != nil {
		_ = tmp.Close()

		return fmt.Errorf("tmp.Write: %w", err)
	}

	if err = tmp.Chmod(filePerm); err != nil {
		_ = tmp.Close()

		return fmt.Errorf("tmp.Chmod: %w", err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("tmp.Close: %w", err)
	}

	if err = os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("os.Rename: %w", err)
	}

	return nil
}
