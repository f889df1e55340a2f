package driver

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"ember/internal/diag"
	"ember/internal/source"
	"ember/internal/trace"
)

// listFiles возвращает отсортированный список файлов с расширением ext в директории
func listFiles(dir, ext string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ext) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// ExpandInputs replaces every directory argument with the files inside it
// that carry ext. Plain file arguments are kept even when missing, so that
// the failure is reported per file.
func ExpandInputs(args []string, ext string) ([]string, error) {
	out := make([]string, 0, len(args))
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil || !info.IsDir() {
			out = append(out, arg)
			continue
		}
		files, err := listFiles(arg, ext)
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", arg, err)
		}
		out = append(out, files...)
	}
	return out, nil
}

// loadFile reads path into fileSet. On failure the path is registered as an
// empty virtual file and a Result carrying the I/O diagnostic is returned.
func loadFile(fileSet *source.FileSet, path string, opts Options) (*source.File, *Result) {
	loaded := opts.Timer.Track("load", path)
	emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusWorking})
	id, err := fileSet.Load(path)
	loaded(0)
	if err == nil {
		return fileSet.Get(id), nil
	}
	placeholder := fileSet.AddVirtual(path, nil)
	res := &Result{Path: path, FileID: placeholder, Bag: diag.NewBag(opts.MaxDiagnostics)}
	reportLoadError(diag.BagReporter{Bag: res.Bag}, placeholder, err)
	emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusError, Err: err})
	return nil, res
}

// decodeLoaded decodes an already loaded file, going through opts.Cache.
func decodeLoaded(ctx context.Context, path string, file *source.File, opts Options) (*Result, error) {
	started := time.Now()
	var key Digest
	if opts.Cache != nil {
		key = CacheKey(file.Hash, opts)
		var payload CachePayload
		hit, err := opts.Cache.Get(key, &payload)
		if err != nil {
			trace.Error(ctx, trace.ScopeFile, "cache:get", err)
		}
		if hit {
			res := payloadToResult(&payload, file, opts.MaxDiagnostics)
			emit(opts.Progress, finalEvent(path, StageCache, res, started))
			return res, nil
		}
	}

	emit(opts.Progress, Event{File: path, Stage: StageDecode, Status: StatusWorking})
	decoded := opts.Timer.Track("decode", path)
	res, err := DecodeSource(ctx, file, opts)
	decoded(len(res.Literals))
	if err != nil {
		emit(opts.Progress, Event{File: path, Stage: StageDecode, Status: StatusError, Err: err})
		return res, err
	}
	if opts.Cache != nil {
		if err := opts.Cache.Put(key, resultToPayload(res)); err != nil {
			trace.Error(ctx, trace.ScopeFile, "cache:put", err)
			res.Bag.Add(diag.New(diag.SevWarning, diag.IOCacheError,
				source.Span{File: file.ID}, "failed to store decode cache: "+err.Error()))
		}
	}
	emit(opts.Progress, finalEvent(path, StageDecode, res, started))
	return res, nil
}

// DecodeFile loads path into fileSet and decodes it.
func DecodeFile(ctx context.Context, fileSet *source.FileSet, path string, opts Options) (*Result, error) {
	file, failed := loadFile(fileSet, path, opts)
	if failed != nil {
		return failed, nil
	}
	return decodeLoaded(ctx, path, file, opts)
}

// DecodeFiles decodes all paths (directories are expanded) in parallel.
// Results keep the order of the expanded paths.
func DecodeFiles(ctx context.Context, paths []string, opts Options) (*source.FileSet, []*Result, error) {
	ctx, span := trace.Start(ctx, trace.ScopePass, "decode-files")
	defer span.End("")

	files, err := ExpandInputs(paths, opts.ext())
	if err != nil {
		return nil, nil, err
	}
	span.WithExtra("files", fmt.Sprint(len(files)))

	base, _ := os.Getwd()
	fileSet := source.NewFileSetWithBase(base)
	if len(files) == 0 {
		return fileSet, nil, nil
	}
	for _, path := range files {
		emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusQueued})
	}

	// FileSet не потокобезопасен: загружаем последовательно
	loaded := make([]*source.File, len(files))
	results := make([]*Result, len(files))
	for i, path := range files {
		loaded[i], results[i] = loadFile(fileSet, path, opts)
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		if results[i] != nil {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			// индекс i уникален для горутины, мьютекс не нужен
			res, err := decodeLoaded(gctx, path, loaded[i], opts)
			results[i] = res
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

// MergeBags collects diagnostics of every result into one sorted,
// deduplicated Bag.
func MergeBags(results []*Result) *diag.Bag {
	merged := diag.NewBag(0)
	for _, res := range results {
		if res != nil {
			merged.Merge(res.Bag)
		}
	}
	merged.Sort()
	merged.Dedup()
	return merged
}
