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

// EnvVar selects an isolated set of files (e.g. MMO_ENV=dev).
const EnvVar = "MMO_ENV"

// Paths holds all application path configurations.
type Paths struct {
	configDir      string
	configFileName string
	levelsFileName string
	dbFileName     string
	logFileName    string

	// Computed absolute paths
	configFilePath string
	levelsFilePath string
	dbFilePath     string
	logFilePath    string
}

var (
	paths   *Paths
	once    sync.Once
	initErr error
)

// New computes the application paths for the given environment name. An
// empty env yields the default file names.
func New(env string) (*Paths, error) {
	p := &Paths{
		configDir:      "mmo",
		configFileName: "config.yml",
		levelsFileName: "levels.yml",
		dbFileName:     "mmo.db",
		logFileName:    "mmo.log",
	}

	p.applyEnvironmentOverrides(env)

	if err := p.computePaths(); err != nil {
		return nil, err
	}

	return p, nil
}

// Initialize must be called once at program startup.
func Initialize() error {
	once.Do(func() {
		paths, initErr = New(strings.TrimSpace(os.Getenv(EnvVar)))
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

func Dir() string {
	return Must().configDir
}

func ConfigFilePath() string {
	return Must().configFilePath
}

func LevelsFilePath() string {
	return Must().levelsFilePath
}

func DBFilePath() string {
	return Must().dbFilePath
}

func LogFilePath() string {
	return Must().logFilePath
}

func (p *Paths) ConfigFilePath() string { return p.configFilePath }

func (p *Paths) LevelsFilePath() string { return p.levelsFilePath }

func (p *Paths) DBFilePath() string { return p.dbFilePath }

func (p *Paths) LogFilePath() string { return p.logFilePath }

func (p *Paths) applyEnvironmentOverrides(env string) {
	if env == "" {
		return
	}

	p.configFileName = fmt.Sprintf("config_%s.yml", env)
	p.levelsFileName = fmt.Sprintf("levels_%s.yml", env)
	p.dbFileName = fmt.Sprintf("mmo_%s.db", env)
	p.logFileName = fmt.Sprintf("mmo_%s.log", env)
}

func (p *Paths) computePaths() error {
	var err error

	p.configFilePath, err = xdg.ConfigFile(
		filepath.Join(p.configDir, p.configFileName),
	)
	if err != nil {
		return err
	}

	p.levelsFilePath = filepath.Join(
		filepath.Dir(p.configFilePath),
		p.levelsFileName,
	)

	p.dbFilePath, err = xdg.DataFile(filepath.Join(p.configDir, p.dbFileName))
	if err != nil {
		return err
	}

	p.logFilePath = filepath.Join(
		filepath.Dir(p.dbFilePath),
		"log",
		p.logFileName,
	)

	return nil
}

// StripExtension returns the input file name without its extension.
func StripExtension(fileName string) string {
	return fileName[:len(fileName)-len(filepath.Ext(fileName))]
}

// ConfigDir returns the directory holding the config and levels files.
func ConfigDir() string {
	return filepath.Dir(Must().configFilePath)
}

// LevelsFileName returns the levels file name for the current environment.
func LevelsFileName() string {
	return Must().levelsFileName
}
