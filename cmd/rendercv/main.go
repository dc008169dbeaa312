package main

// Render a resume YAML file to DOCX (and optionally PDF):
//   go run ./cmd/rendercv -in resume.yaml -out ./out/resume.docx [-pdf]

import (
	"archive/zip"
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"cvforge/resume/render"
	"cvforge/resume/schema"
)

func main() {
	inPath := flag.String("in", "", "path to resume YAML file")
	outPath := flag.String("out", "./out/resume.docx", "output path for generated DOCX")
	makePDF := flag.Bool("pdf", false, "also convert the DOCX to PDF via LibreOffice")
	soffice := flag.String("soffice", "soffice", "LibreOffice binary")
	timeout := flag.Duration("timeout", 60*time.Second, "PDF conversion timeout")
	flag.Parse()

	if *inPath == "" {
		fmt.Fprintln(os.Stderr, "usage: rendercv -in resume.yaml [-out path] [-pdf]")
		os.Exit(2)
	}

	data, err := os.ReadFile(*inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read input: %v\n", err)
		os.Exit(1)
	}

	record, err := schema.ParseYAML(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid resume record: %v\n", err)
		os.Exit(1)
	}

	reg := render.NewRegistry()
	doc := render.Assemble(record, reg)

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "prepare output dir: %v\n", err)
		os.Exit(1)
	}
	if err := render.WriteFile(doc, reg, *outPath); err != nil {
		fmt.Fprintf(os.Stderr, "write docx: %v\n", err)
		os.Exit(1)
	}
	if err := validateRenderedDocx(*outPath); err != nil {
		fmt.Fprintf(os.Stderr, "render validation failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("OK: wrote %s\n", *outPath)

	if *makePDF {
		converter := &render.LibreOfficeConverter{Binary: *soffice, Timeout: *timeout}
		pdfPath, err := converter.Convert(context.Background(), *outPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "pdf conversion failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("OK: wrote %s\n", pdfPath)
	}
}

func validateRenderedDocx(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return fmt.Errorf("not a zip archive: %w", err)
	}
	for _, name := range []string{"[Content_Types].xml", "word/document.xml", "word/styles.xml", "word/numbering.xml"} {
		found := false
		for _, f := range zr.File {
			if f.Name == name {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("missing part %s", name)
		}
	}
	return nil
}
