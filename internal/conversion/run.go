package conversion

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"dictpivot/internal/dictsort"
	"dictpivot/internal/document"
	"dictpivot/internal/fileutil"
	"dictpivot/internal/language"
	"dictpivot/internal/logging"
	"dictpivot/internal/ordered"
	"dictpivot/internal/pivot"
)

// Run executes req. Nothing is written unless every earlier phase succeeds.
func Run(ctx context.Context, req Request, logger *slog.Logger) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := logging.RunIDFromContext(ctx); !ok {
		ctx = logging.WithRunID(ctx, "")
	}
	logger = logging.NewComponentLogger(logging.WithContext(ctx, logger), "conversion")

	result, err := run(ctx, req, logger)
	if err != nil {
		logger.Error(
			"conversion failed",
			logging.String(logging.FieldEventType, "conversion_failed"),
			logging.String(logging.FieldInput, displayPath(req.InputPath)),
			logging.Error(err),
		)
		return Result{}, err
	}
	return result, nil
}

func run(ctx context.Context, req Request, logger *slog.Logger) (Result, error) {
	direction, err := ParseDirection(string(req.Direction))
	if err != nil {
		return Result{}, err
	}
	var sortOpts []dictsort.Option
	if req.Sort {
		tag, err := language.ParseTag(req.Locale)
		if err != nil {
			return Result{}, err
		}
		sortOpts = append(sortOpts, dictsort.WithLocale(tag))
	}

	inFormat := req.inputFormat()
	outFormat := req.outputFormat(inFormat)
	started := time.Now()
	logger.Info(
		"conversion started",
		logging.String(logging.FieldEventType, "conversion_start"),
		logging.String(logging.FieldInput, displayPath(req.InputPath)),
		logging.String(logging.FieldOutput, displayPath(req.OutputPath)),
		logging.String("direction", string(direction)),
		logging.Bool("sort", req.Sort),
		logging.String(logging.FieldFormat, string(inFormat)+"->"+string(outFormat)),
	)

	data, err := fileutil.ReadInput(req.InputPath, req.Stdin)
	if err != nil {
		return Result{}, fmt.Errorf("read input: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	doc, err := document.Decode(data, inFormat)
	if err != nil {
		return Result{}, fmt.Errorf("decode input: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	var (
		out       ordered.Iterable
		languages []string
		keys      int
	)
	switch direction {
	case DirectionUnpivot:
		packs, err := pivot.Unpivot(doc, req.Languages)
		if err != nil {
			return Result{}, fmt.Errorf("unpivot: %w", err)
		}
		if req.Sort {
			packs = dictsort.Sort(packs, sortOpts...)
		}
		languages = packs.Keys()
		for _, pack := range packs.All() {
			keys = pack.Len()
			break
		}
		out = packs
	default:
		raw, err := pivot.Classify(doc)
		if err != nil {
			return Result{}, fmt.Errorf("pivot: %w", err)
		}
		if ignored := raw.Ignored(); len(ignored) > 0 {
			logger.Debug("ignoring non-object top-level entries", logging.Strings("entries", ignored))
		}
		dict, err := raw.Pivot(req.Languages)
		if err != nil {
			return Result{}, fmt.Errorf("pivot: %w", err)
		}
		languages = raw.LanguageSet(req.Languages)
		if req.Sort {
			dict = dictsort.Sort(dict, sortOpts...)
			languages = dictsort.Keys(languages, sortOpts...)
		}
		keys = dict.Len()
		out = dict
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	encoded, err := document.Encode(out, outFormat, req.Encode)
	if err != nil {
		return Result{}, fmt.Errorf("encode output: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	if err := write(req, encoded); err != nil {
		return Result{}, err
	}

	result := Result{
		Languages:  languages,
		Keys:       keys,
		Bytes:      len(encoded),
		OutputPath: displayPath(req.OutputPath),
		Format:     outFormat,
	}
	logger.Info(
		"conversion finished",
		logging.String(logging.FieldEventType, "conversion_complete"),
		logging.Int(logging.FieldKeys, result.Keys),
		logging.Int(logging.FieldLanguages, len(result.Languages)),
		logging.Int(logging.FieldBytes, result.Bytes),
		logging.Duration(logging.FieldDuration, time.Since(started)),
	)
	return result, nil
}

func write(req Request, data []byte) error {
	if fileutil.IsStdio(req.OutputPath) {
		if req.Stdout == nil {
			return fmt.Errorf("write output: no stdout writer available")
		}
		if _, err := req.Stdout.Write(data); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	}
	if err := fileutil.WriteFileAtomic(req.OutputPath, data, req.fileMode()); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func displayPath(path string) string {
	if fileutil.IsStdio(path) {
		return fileutil.StdioPath
	}
	return path
}
