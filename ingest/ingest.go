package ingest

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/cache"
	"github.com/go-git/go-git/v5/storage/filesystem"
)

const (
	// DefaultWorkdir is the default worktree directory name within FS.
	DefaultWorkdir = "."

	// cacheSubdir is the directory under the user cache home where Clone
	// materializes repositories when no filesystem is supplied.
	cacheSubdir = "auto-release-note-generation"
)

// Options configures repository discovery, creation, and cloning.
type Options struct {
	// FS is the filesystem holding the repository state (OS or in-memory).
	// Required for Init and Open. When nil, Clone materializes the
	// repository on the host filesystem under CacheRoot.
	FS billy.Filesystem

	// Workdir is the path within FS for the worktree root.
	// Defaults to "." (current directory in FS).
	Workdir string

	// Bare indicates a bare repository (.git only, no worktree).
	Bare bool

	// CacheRoot overrides where Clone keeps repositories when FS is nil.
	// Defaults to a project directory under the user cache home.
	CacheRoot string
}

// Validate checks that the Options are properly configured.
func (o *Options) Validate() error {
	if o.Workdir != "" && filepath.IsAbs(o.Workdir) {
		return WrapError(ErrInvalidOptions, "Workdir must be relative to FS")
	}
	return nil
}

// applyDefaults sets default values for any unset fields in Options.
func (o *Options) applyDefaults() {
	if o.Workdir == "" {
		o.Workdir = DefaultWorkdir
	}
	if o.CacheRoot == "" {
		o.CacheRoot = filepath.Join(xdg.CacheHome, cacheSubdir)
	}
}

// Repo is an opened Git repository that commits can be ingested from.
type Repo struct {
	repo     *gogit.Repository
	worktree *gogit.Worktree
	options  Options
}

// Init creates a new empty repository within opts.FS. It exists mostly so
// tests and tooling can fabricate histories; production callers usually
// Open or Clone.
func Init(ctx context.Context, opts *Options) (*Repo, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	opts.applyDefaults()

	if opts.FS == nil {
		return nil, WrapError(ErrInvalidOptions, "FS is required to initialize a repository")
	}

	storage, worktreeFS, err := buildStorage(opts)
	if err != nil {
		return nil, err
	}

	repo, err := gogit.Init(storage, worktreeFS)
	if err != nil {
		return nil, WrapError(err, "failed to initialize repository")
	}

	return newRepo(repo, opts)
}

// Open opens an existing repository within opts.FS.
func Open(ctx context.Context, opts *Options) (*Repo, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	opts.applyDefaults()

	if opts.FS == nil {
		return nil, WrapError(ErrInvalidOptions, "FS is required to open a repository")
	}

	storage, worktreeFS, err := buildStorage(opts)
	if err != nil {
		return nil, err
	}

	repo, err := gogit.Open(storage, worktreeFS)
	if err != nil {
		return nil, WrapError(err, "failed to open repository")
	}

	return newRepo(repo, opts)
}

// Clone fetches a repository from remoteURL. With a nil opts.FS the clone
// lands on the host filesystem under CacheRoot, keyed by the remote URL, so
// repeated ingestion runs reuse the same location.
//
// Context timeout/cancellation is honored during the clone operation.
func Clone(ctx context.Context, remoteURL string, opts *Options) (*Repo, error) {
	if remoteURL == "" {
		return nil, WrapError(ErrInvalidOptions, "remote URL cannot be empty")
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	opts.applyDefaults()

	if opts.FS == nil {
		opts.FS = osfs.New(filepath.Join(opts.CacheRoot, cloneDirName(remoteURL)))
	}

	storage, worktreeFS, err := buildStorage(opts)
	if err != nil {
		return nil, err
	}

	repo, err := gogit.CloneContext(ctx, storage, worktreeFS, &gogit.CloneOptions{
		URL: remoteURL,
	})
	if err != nil {
		return nil, WrapErrorf(err, "failed to clone %q", remoteURL)
	}

	return newRepo(repo, opts)
}

// buildStorage assembles go-git storage and the worktree filesystem from
// Options. Bare repositories store objects at the workdir root; non-bare
// ones keep them under .git with the workdir as worktree.
func buildStorage(opts *Options) (*filesystem.Storage, billy.Filesystem, error) {
	scoped, err := opts.FS.Chroot(opts.Workdir)
	if err != nil {
		return nil, nil, WrapErrorf(err, "failed to chroot to workdir %q", opts.Workdir)
	}

	if opts.Bare {
		return filesystem.NewStorage(scoped, cache.NewObjectLRUDefault()), nil, nil
	}

	dotGit, err := scoped.Chroot(gogit.GitDirName)
	if err != nil {
		return nil, nil, WrapError(err, "failed to access .git directory")
	}
	return filesystem.NewStorage(dotGit, cache.NewObjectLRUDefault()), scoped, nil
}

// newRepo wraps a go-git repository, resolving the worktree for non-bare
// repositories.
func newRepo(repo *gogit.Repository, opts *Options) (*Repo, error) {
	r := &Repo{repo: repo, options: *opts}

	if !opts.Bare {
		worktree, err := repo.Worktree()
		if err != nil {
			return nil, WrapError(err, "failed to get worktree")
		}
		r.worktree = worktree
	}

	return r, nil
}

// cloneDirName derives a filesystem-safe directory name from a remote URL.
func cloneDirName(remoteURL string) string {
	name := strings.TrimSuffix(remoteURL, ".git")
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '-'
		}
	}, name)
	return strings.Trim(name, "-.")
}
