package mocks

import (
	"crypto/sha1"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"

	"github.com/linecard/albevents/internal/gitlib"
	mockfixture "github.com/linecard/albevents/pkg/mock/fixture"

	"github.com/rs/zerolog/log"
)

// MockRepository lays out a project under root with the named fixture as its
// serverless.yml and returns a git description of it on branchName.
func MockRepository(root, branchName, fixture string) (gitMock gitlib.DotGit, cleanupHook func()) {
	if err := os.MkdirAll(root, os.ModePerm); err != nil {
		log.Fatal().Err(err).Msg("failed to create project directory")
	}

	if err := mockfixture.Copy(fixture, filepath.Join(root, "serverless.yml")); err != nil {
		log.Fatal().Err(err).Str("fixture", fixture).Msg("failed to copy service fixture")
	}

	sha, err := shaPath(root)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to determine SHA")
	}

	gitMock = gitlib.DotGit{
		Branch: branchName,
		Sha:    sha,
		Root:   root,
		Dirty:  false,
	}

	cleanupHook = func() {
		os.RemoveAll(root)
	}

	return gitMock, cleanupHook
}

func shaPath(path string) (string, error) {
	hasher := sha1.New()

	err := filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		if _, err := hasher.Write([]byte(p)); err != nil {
			return err
		}

		f, err := os.Open(p)
		if err != nil {
			return err
		}
		defer f.Close()

		_, err = io.Copy(hasher, f)
		return err
	})

	if err != nil {
		return "", err
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}
