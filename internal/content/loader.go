package content

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/nfrund/landing/internal/components/icons"
	"github.com/nfrund/landing/internal/domain"
	"github.com/nfrund/landing/internal/view"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const (
	LandingFile = "landing.yaml"
	ResumeFile  = "resume.yaml"
)

// NewFS layers an optional content directory over the embedded defaults.
// Files present in dir win; anything missing falls through to the embedded copy.
func NewFS(embedded fs.FS, dir string) afero.Fs {
	base := afero.NewReadOnlyFs(afero.FromIOFS{FS: embedded})
	if dir == "" {
		return base
	}
	return afero.NewCopyOnWriteFs(base, afero.NewBasePathFs(afero.NewOsFs(), dir))
}

// Loader reads and validates site content from a filesystem.
type Loader struct {
	fs       afero.Fs
	validate *validator.Validate
}

// NewLoader creates a loader over fsys.
func NewLoader(fsys afero.Fs) *Loader {
	return &Loader{fs: fsys, validate: NewValidator()}
}

// NewValidator returns a validator with the content-specific tags registered:
// "icon" (a known icon name) and "safeurl" (an href that survives sanitisation).
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("icon", func(fl validator.FieldLevel) bool {
		_, err := icons.ByName(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("safeurl", func(fl validator.FieldLevel) bool {
		return view.IsSafeURL(fl.Field().String())
	})
	return v
}

// Load reads both content files and validates the result.
func (l *Loader) Load() (*Site, error) {
	var site Site
	if err := l.decode(LandingFile, &site.Landing); err != nil {
		return nil, err
	}
	if err := l.decode(ResumeFile, &site.Resume); err != nil {
		return nil, err
	}
	if err := l.validate.Struct(&site); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidContent, describe(err))
	}
	return &site, nil
}

func (l *Loader) decode(name string, out any) error {
	data, err := afero.ReadFile(l.fs, name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: content file %s", domain.ErrNotFound, name)
		}
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: parse %s: %v", domain.ErrInvalidContent, name, err)
	}
	return nil
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msg := ""
	for i, fe := range verrs {
		if i > 0 {
			msg += "; "
		}
		msg += fmt.Sprintf("%s fails %q", fe.Namespace(), fe.Tag())
	}
	return msg
}
