package explore

import (
	"fmt"

	"github.com/Dicklesworthstone/peek/internal/explore/command"
	"github.com/Dicklesworthstone/peek/internal/explore/views"
	"github.com/Dicklesworthstone/peek/internal/ingest"
	"github.com/Dicklesworthstone/peek/internal/query"
	"github.com/Dicklesworthstone/peek/internal/values"
)

// classify picks the initial frame for a pipeline. The arms are ordered:
// try mode first, then binary, then the realized-table shapes.
func classify(pipe ingest.Pipeline, opts RunOptions, engine *query.Engine, vcfg views.Config) (Page, error) {
	if opts.StartInTry {
		seed, err := ingest.SeedValue(pipe)
		if err != nil {
			return Page{}, err
		}
		return Page{View: views.NewTryView(seed, "", engine, vcfg), Stackable: true}, nil
	}

	if pipe.Kind == ingest.PipelineBytes {
		data, err := ingest.DrainBytes(pipe.Bytes)
		if err != nil {
			return Page{}, fmt.Errorf("%w: %v", ingest.ErrIngest, err)
		}
		return Page{View: views.NewBinaryView(data, vcfg), Stackable: true}, nil
	}
	if pipe.Kind == ingest.PipelineValue && pipe.Value.IsBinary() {
		return Page{View: views.NewBinaryView(pipe.Value.Bytes, vcfg), Stackable: true}, nil
	}

	table, err := ingest.Collect(pipe)
	if err != nil {
		return Page{}, err
	}

	if table.IsEmpty() {
		return Page{View: views.NewHelpView(command.Manual(), "", vcfg), Stackable: false}, nil
	}
	if v, ok := table.SimpleValue(); ok {
		return Page{View: views.NewPreview(values.Pretty(v), vcfg), Stackable: false}, nil
	}

	var view *views.RecordView
	if pipe.Kind == ingest.PipelineValue && pipe.Value.IsRecord() {
		view = views.NewRecordViewFromValue(pipe.Value, vcfg)
	} else {
		view = views.NewRecordView(table, vcfg)
	}
	if opts.Tail {
		view.Tail()
	}
	return Page{View: view, Stackable: true}, nil
}
