package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/binzume/fbxbake/baker"
	"github.com/binzume/fbxbake/fbx"
	"github.com/binzume/fbxbake/gltfutil"
	"github.com/binzume/fbxbake/unity"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] assetdir\n", os.Args[0])
		flag.PrintDefaults()
	}
	out := flag.String("out", "", "output subdirectory name (default \"baked\")")
	preview := flag.Bool("preview", false, "also write a .glb preview of each baked file")
	confPath := flag.String("config", "", "config file (default fbxbake.toml in assetdir)")
	verbose := flag.Bool("v", false, "verbose output")
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		return
	}
	dir := flag.Arg(0)

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "fbxbake"})
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := loadConfig(*confPath, dir)
	if err != nil {
		logger.Fatal("config", "err", err)
	}
	if *out != "" {
		cfg.OutputDir = *out
	}
	if *preview {
		cfg.Preview = true
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Fatal("read dir", "err", err)
	}
	outDir := filepath.Join(dir, cfg.OutputDir)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		logger.Fatal("create output dir", "err", err)
	}

	b := baker.New(cfg.bakerOptions())
	okCount, failCount, meshCount := 0, 0, 0
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		src := filepath.Join(dir, e.Name())
		dst := filepath.Join(outDir, e.Name())
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".fbx":
			n, err := bakeFBX(b, src, dst, cfg.Preview, logger)
			if err == fbx.ErrBinaryFile {
				logger.Warn("binary fbx, skipped", "file", e.Name())
				continue
			} else if err != nil {
				logger.Error("bake failed", "file", e.Name(), "err", err)
				failCount++
				continue
			}
			logger.Info("baked", "file", e.Name(), "meshes", n)
			okCount++
			meshCount += n
		case ".prefab":
			n, err := resetPrefab(src, dst, logger)
			if err != nil {
				logger.Error("reset failed", "file", e.Name(), "err", err)
				failCount++
				continue
			}
			logger.Info("reset", "file", e.Name(), "transforms", n)
			okCount++
		}
	}
	if failCount > 0 {
		logger.Error("FAIL", "ok", okCount, "failed", failCount)
		os.Exit(1)
	}
	logger.Info("OK", "files", okCount, "meshes", meshCount)
}

func bakeFBX(b *baker.Baker, src, dst string, preview bool, logger *log.Logger) (int, error) {
	if binary, err := fbx.DetectBinary(src); err != nil {
		return 0, err
	} else if binary {
		return 0, fbx.ErrBinaryFile
	}
	buf, err := fbx.Load(src)
	if err != nil {
		return 0, err
	}
	res, err := b.Bake(buf)
	if err != nil {
		return 0, err
	}
	if res.FixedNormals > 0 {
		logger.Debug("fixed normals", "file", filepath.Base(src), "count", res.FixedNormals)
	}
	if err := buf.Save(dst); err != nil {
		return 0, err
	}
	if preview {
		glb := strings.TrimSuffix(dst, filepath.Ext(dst)) + ".glb"
		if err := gltfutil.SavePreview(baker.Snapshots(buf), glb); err != nil {
			logger.Warn("preview export failed", "file", filepath.Base(glb), "err", err)
		}
	}
	return res.BakedMeshes, nil
}

func resetPrefab(src, dst string, logger *log.Logger) (int, error) {
	data, err := os.ReadFile(src)
	if err != nil {
		return 0, err
	}
	out, n := unity.ResetTransforms(data)
	if err := unity.VerifyReset(out); err != nil {
		logger.Warn("verify", "file", filepath.Base(src), "err", err)
	}
	return n, os.WriteFile(dst, out, 0o644)
}
