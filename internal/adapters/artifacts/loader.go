package artifacts

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/coininu/launchpad/internal/domain"
	"github.com/coininu/launchpad/internal/usecase"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/sahilm/fuzzy"
)

// maxSuggestions caps the fuzzy matches attached to a not-found error.
const maxSuggestions = 3

// Loader indexes compiled artifacts from a Foundry-style output directory
// (out/<File>.sol/<Contract>.json) and resolves contract names to them.
// Bare names are convenient but not guaranteed unique across source files,
// so every artifact is also indexed under its "<File>.sol:<Contract>" key.
type Loader struct {
	outDir string
	log    *slog.Logger

	mu      sync.RWMutex
	indexed bool
	byKey   map[string]*domain.ContractArtifact   // Source:Name, always unique
	byName  map[string][]*domain.ContractArtifact // bare name, may collide
}

// foundryArtifact is the subset of the compiler output we read
type foundryArtifact struct {
	ABI      json.RawMessage `json:"abi"`
	Bytecode struct {
		Object string `json:"object"`
	} `json:"bytecode"`
}

// NewLoader creates a new artifact loader rooted at outDir
func NewLoader(outDir string, log *slog.Logger) *Loader {
	return &Loader{
		outDir: outDir,
		log:    log,
		byKey:  make(map[string]*domain.ContractArtifact),
		byName: make(map[string][]*domain.ContractArtifact),
	}
}

// Get resolves a contract name, bare or qualified as "<File>.sol:<Name>",
// to its artifact. A bare name shared by several source files must be
// qualified. A miss returns *domain.ArtifactNotFoundError with close name
// matches so typos read clearly.
func (l *Loader) Get(ctx context.Context, name string) (*domain.ContractArtifact, error) {
	if err := l.ensureIndexed(); err != nil {
		return nil, err
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	if artifact, ok := l.byKey[name]; ok {
		return artifact, nil
	}

	switch matches := l.byName[name]; len(matches) {
	case 0:
		return nil, &domain.ArtifactNotFoundError{
			Name:        name,
			Suggestions: l.suggestionsLocked(name),
		}
	case 1:
		return matches[0], nil
	default:
		keys := make([]string, 0, len(matches))
		for _, match := range matches {
			keys = append(keys, match.Source+":"+match.Name)
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("contract name %q is ambiguous, qualify it as one of: %s",
			name, strings.Join(keys, ", "))
	}
}

// List returns all indexed artifacts
func (l *Loader) List(ctx context.Context) ([]*domain.ContractArtifact, error) {
	if err := l.ensureIndexed(); err != nil {
		return nil, err
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	artifacts := make([]*domain.ContractArtifact, 0, len(l.byKey))
	for _, artifact := range l.byKey {
		artifacts = append(artifacts, artifact)
	}
	return artifacts, nil
}

func (l *Loader) ensureIndexed() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.indexed {
		return nil
	}

	if _, err := os.Stat(l.outDir); os.IsNotExist(err) {
		return fmt.Errorf("output directory %s not found (run the compiler first)", l.outDir)
	}

	err := filepath.WalkDir(l.outDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// Compiler metadata, not contract artifacts
			if d.Name() == "build-info" {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), ".json") {
			return nil
		}

		artifact, err := l.parseArtifact(path)
		if err != nil {
			// Tolerate unrelated JSON in the output tree
			l.log.Debug("skipping file", "path", path, "err", err)
			return nil
		}
		if artifact != nil {
			l.byKey[artifact.Source+":"+artifact.Name] = artifact
			l.byName[artifact.Name] = append(l.byName[artifact.Name], artifact)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to index artifacts in %s: %w", l.outDir, err)
	}

	l.log.Debug("indexed artifacts", "dir", l.outDir, "count", len(l.byKey))
	l.indexed = true
	return nil
}

// parseArtifact reads one compiler output file. Artifacts without creation
// bytecode (interfaces, abstract contracts) are skipped with a nil result.
func (l *Loader) parseArtifact(path string) (*domain.ContractArtifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw foundryArtifact
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if len(raw.ABI) == 0 {
		return nil, fmt.Errorf("no abi in %s", path)
	}

	bytecode := common.FromHex(raw.Bytecode.Object)
	if len(bytecode) == 0 {
		return nil, nil
	}

	parsedABI, err := abi.JSON(strings.NewReader(string(raw.ABI)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ABI in %s: %w", path, err)
	}

	name := strings.TrimSuffix(filepath.Base(path), ".json")
	return &domain.ContractArtifact{
		Name:     name,
		Source:   filepath.Base(filepath.Dir(path)),
		Bytecode: bytecode,
		ABI:      parsedABI,
	}, nil
}

func (l *Loader) suggestionsLocked(name string) []string {
	names := make([]string, 0, len(l.byName))
	for known := range l.byName {
		names = append(names, known)
	}

	matches := fuzzy.Find(name, names)
	suggestions := make([]string, 0, maxSuggestions)
	for i, match := range matches {
		if i == maxSuggestions {
			break
		}
		suggestions = append(suggestions, match.Str)
	}
	return suggestions
}

var _ usecase.ArtifactRepository = (*Loader)(nil)
