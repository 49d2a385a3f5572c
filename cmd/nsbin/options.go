package main

import (
	"fmt"

	"github.com/spf13/pflag"
	"golang.org/x/text/encoding"

	"github.com/joshuapare/nsbin/pkg/nsbin"
)

// siteFlags are the artifact-format flags shared by apply and locate. Empty
// values fall back to the config file.
type siteFlags struct {
	encoding  string
	layout    string
	sizeField string
}

func (f *siteFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.encoding, "encoding", "", "Text encoding of identifier and name (e.g. utf-8, utf-16le, windows-1252)")
	fs.StringVar(&f.layout, "layout", "", "Span layout: payload or inplace")
	fs.StringVar(&f.sizeField, "size-field", "", "Size field form: binary or hex")
}

// resolve merges the flags over cfg into an encoding and patch options.
func (f *siteFlags) resolve() (encoding.Encoding, *nsbin.Options, error) {
	enc, err := nsbin.LookupEncoding(orDefault(f.encoding, cfg.Encoding))
	if err != nil {
		return nil, nil, err
	}
	layout, err := nsbin.ParseLayout(orDefault(f.layout, cfg.Layout))
	if err != nil {
		return nil, nil, err
	}
	form, err := nsbin.ParseSizeField(orDefault(f.sizeField, cfg.SizeField))
	if err != nil {
		return nil, nil, err
	}
	flush, err := nsbin.ParseFlushMode(cfg.Flush)
	if err != nil {
		return nil, nil, fmt.Errorf("flush: %w", err)
	}
	return enc, &nsbin.Options{
		Layout:       layout,
		SizeField:    form,
		CreateBackup: cfg.Backup,
		Flush:        flush,
	}, nil
}

func orDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
