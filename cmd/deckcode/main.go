// Command deckcode encodes deck files, decodes deck codes and renders QR
// codes for them.
//
//	deckcode encode -file deck.yaml
//	deckcode decode -code CODE [-name NAME] [-data DIR]
//	deckcode qr -code CODE -out DIR [-size N]
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/youruser/deckcodes/internal/cards"
	"github.com/youruser/deckcodes/internal/deck"
	"github.com/youruser/deckcodes/internal/deckcode"
	imagepkg "github.com/youruser/deckcodes/internal/image"
	"github.com/youruser/deckcodes/internal/util"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: deckcode [glog flags] encode|decode|qr [flags]")
		flag.PrintDefaults()
	}
	flag.Parse()
	defer glog.Flush()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}
	if err := run(flag.Arg(0), flag.Args()[1:], os.Stdout); err != nil {
		glog.Errorf("%s: %v", flag.Arg(0), err)
		glog.Flush()
		os.Exit(1)
	}
}

func run(cmd string, args []string, out io.Writer) error {
	switch cmd {
	case "encode":
		return runEncode(args, out)
	case "decode":
		return runDecode(args, out)
	case "qr":
		return runQR(args, out)
	}
	return errors.Errorf("unknown command %q", cmd)
}

func runEncode(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("encode", flag.ContinueOnError)
	file := fs.String("file", "", "YAML deck file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *file == "" {
		return errors.New("-file is required")
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		return err
	}
	f, err := deck.ParseFile(data)
	if err != nil {
		return err
	}

	var d *deck.Deck
	if len(f.Cards) == 0 && f.Code != "" {
		d, err = deckcode.Decode(f.Code)
	} else {
		d, err = f.Deck()
	}
	if err != nil {
		return errors.Wrap(err, *file)
	}
	glog.V(1).Infof("encoding %d entries from %s", d.Len(), *file)

	code, err := deckcode.Encode(d)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, code)
	return err
}

func runDecode(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	code := fs.String("code", "", "Deck code")
	name := fs.String("name", "", "Deck name for the header line")
	dataDir := fs.String("data", "", "Optional catalog directory for card names")
	if err := fs.Parse(args); err != nil {
		return err
	}

	d, err := deckcode.Decode(*code)
	if err != nil {
		return err
	}

	var catalog cards.Catalog
	if *dataDir != "" {
		catalog, err = cards.LoadCatalogFromDataDir(*dataDir)
		if err != nil {
			glog.Warningf("failed to load card catalog: %v", err)
		}
	}
	_, err = fmt.Fprintln(out, deck.ExportText(*name, d, catalog))
	return err
}

func runQR(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("qr", flag.ContinueOnError)
	code := fs.String("code", "", "Deck code")
	dir := fs.String("out", ".", "Output directory")
	size := fs.Int("size", 400, "Image size in pixels")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if _, err := deckcode.Decode(*code); err != nil {
		return err
	}
	b, err := imagepkg.GenerateQRPNG(*code, *size)
	if err != nil {
		return err
	}
	path, err := util.WriteFileInDir(*dir, "deck.png", b)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, path)
	return err
}
