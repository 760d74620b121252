// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
)

// EnvName selects an alternative set of files (e.g. "dev" uses
// config_dev.yml and mushaf_dev.db).
const EnvName = "MUSHAF_ENV"

// Paths holds all application path configurations.
type Paths struct {
	appDir         string
	configFileName string
	dbFileName     string
	logFileName    string
	archiveName    string

	// Computed absolute paths
	configFilePath string
	dbFilePath     string
	logFilePath    string
	pagesDir       string
	archivePath    string
}

var (
	paths *Paths
	once  sync.Once
)

// Initialize must be called once at program startup.
func Initialize() error {
	var initErr error

	once.Do(func() {
		paths = &Paths{
			appDir:         "mushaf",
			configFileName: "config.yml",
			dbFileName:     "mushaf.db",
			logFileName:    "mushaf.log",
			archiveName:    "quran_pages.zip",
		}

		paths.applyEnvironmentOverrides()
		initErr = paths.computePaths()
	})

	return initErr
}

// Must panics if paths haven't been initialized.
func Must() *Paths {
	if paths == nil {
		panic("pathutil.Initialize() must be called before accessing paths")
	}

	return paths
}

func ConfigFilePath() string {
	return Must().configFilePath
}

func DBFilePath() string {
	return Must().dbFilePath
}

func LogFilePath() string {
	return Must().logFilePath
}

// PagesDir is the document directory that holds the extracted page images.
func PagesDir() string {
	return Must().pagesDir
}

// ArchivePath is the cache-scoped location of the downloaded page archive.
func ArchivePath() string {
	return Must().archivePath
}

func (p *Paths) applyEnvironmentOverrides() {
	env := strings.TrimSpace(os.Getenv(EnvName))
	if env != "" {
		p.configFileName = fmt.Sprintf("config_%s.yml", env)
		p.dbFileName = fmt.Sprintf("mushaf_%s.db", env)
		p.logFileName = fmt.Sprintf("mushaf_%s.log", env)
		p.archiveName = fmt.Sprintf("quran_pages_%s.zip", env)
	}
}

func (p *Paths) computePaths() error {
	var err error

	p.configFilePath, err = xdg.ConfigFile(filepath.Join(p.appDir, p.configFileName))
	if err != nil {
		return err
	}

	p.dbFilePath, err = xdg.DataFile(filepath.Join(p.appDir, p.dbFileName))
	if err != nil {
		return err
	}

	p.logFilePath, err = xdg.StateFile(filepath.Join(p.appDir, "log", p.logFileName))
	if err != nil {
		return err
	}

	p.archivePath, err = xdg.CacheFile(filepath.Join(p.appDir, p.archiveName))
	if err != nil {
		return err
	}

	p.pagesDir = filepath.Join(filepath.Dir(p.dbFilePath), "quran_pages")

	return nil
}
