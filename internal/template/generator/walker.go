package generator

import (
	"io/fs"
	"iter"
	"os"
	"path/filepath"

	"github.com/tacogips/scaffold/internal/logging"
	"github.com/tacogips/scaffold/internal/template/model"
)

// Walk returns a lazy sequence of the regular files under root, in lexical
// order per directory. Paths are slash-separated and relative to root.
//
// VCS metadata directories are pruned, template.toml is skipped at any depth,
// and .gitignore/.ignore files apply to their own directory and below. An
// entry that cannot be read yields a GeneratorWalkFailed error and the walk
// continues; the consumer decides whether to stop.
func Walk(root string) iter.Seq2[model.SourceEntry, error] {
	return func(yield func(model.SourceEntry, error) bool) {
		logger := logging.GetLogger("walker")
		rules := &ignoreRules{}
		stopped := false

		emitErr := func(rel string, err error) bool {
			if !yield(model.SourceEntry{}, newGeneratorError(GeneratorWalkFailed, "failed to read template entry", rel, err)) {
				stopped = true
			}
			return !stopped
		}

		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
			rel, relErr := filepath.Rel(root, path)
			if relErr != nil {
				rel = path
			}
			rel = filepath.ToSlash(rel)
			if rel == "." {
				rel = ""
			}

			if walkErr != nil {
				if rel == "" && d == nil {
					emitErr(root, walkErr)
					return fs.SkipAll
				}
				if !emitErr(rel, walkErr) {
					return fs.SkipAll
				}
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}

			if rel != "" && IsVCSEntry(d.Name()) {
				logger.Debug().Str("path", rel).Msg("Skipping VCS entry")
				if d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}

			if d.IsDir() {
				if rel != "" && rules.Matches(rel, true) {
					logger.Debug().Str("path", rel).Msg("Skipping ignored directory")
					return fs.SkipDir
				}
				if err := rules.load(path, rel); err != nil {
					if !emitErr(rel, err) {
						return fs.SkipAll
					}
				}
				return nil
			}

			if IsSpecialFile(rel) {
				return nil
			}
			if rules.Matches(rel, false) {
				logger.Debug().Str("path", rel).Msg("Skipping ignored file")
				return nil
			}

			info, err := os.Stat(path)
			if err != nil {
				if !emitErr(rel, err) {
					return fs.SkipAll
				}
				return nil
			}
			if !info.Mode().IsRegular() {
				logger.Debug().Str("path", rel).Str("mode", info.Mode().String()).Msg("Skipping non-regular entry")
				return nil
			}

			content, err := os.ReadFile(path)
			if err != nil {
				if !emitErr(rel, err) {
					return fs.SkipAll
				}
				return nil
			}

			entry := model.SourceEntry{
				Path:     rel,
				Content:  content,
				Mode:     info.Mode(),
				IsBinary: isBinaryContent(content),
			}
			if !yield(entry, nil) {
				stopped = true
				return fs.SkipAll
			}
			return nil
		})
	}
}
