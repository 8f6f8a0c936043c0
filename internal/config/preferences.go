package config

type EmojiFormat string

const (
	// EmojiFormatMarkdown renders the shortcode, e.g. ":tada:".
	EmojiFormatMarkdown EmojiFormat = "markdown"
	// EmojiFormatUnicode renders the glyph itself.
	EmojiFormatUnicode EmojiFormat = "unicode"
)

const (
	KeyAddAllFiles        = "add_all_files"
	KeyEmojiFormat        = "emoji_format"
	KeySignCommit         = "sign_commit"
	KeyUdacityStyleCommit = "udacity_style_commit"
)

const (
	defaultAddAllFiles        = true
	defaultEmojiFormat        = EmojiFormatMarkdown
	defaultSignCommit         = false
	defaultUdacityStyleCommit = true
)

// Preferences is the persisted preference record. A nil field means the key
// is absent from the document.
type Preferences struct {
	AddAllFiles        *bool        `json:"add_all_files,omitempty"`
	EmojiFormat        *EmojiFormat `json:"emoji_format,omitempty"`
	SignCommit         *bool        `json:"sign_commit,omitempty"`
	UdacityStyleCommit *bool        `json:"udacity_style_commit,omitempty"`
}

// Defaults returns a fully defined preference set.
func Defaults() Preferences {
	return Normalize(Preferences{})
}

// Normalize returns a copy of p with every undefined field set to its
// default. Defined fields are never touched, so Normalize(Normalize(p)) ==
// Normalize(p).
func Normalize(p Preferences) Preferences {
	out := p.Clone()
	if out.AddAllFiles == nil {
		out.AddAllFiles = boolPtr(defaultAddAllFiles)
	}
	if out.EmojiFormat == nil {
		f := defaultEmojiFormat
		out.EmojiFormat = &f
	}
	if out.SignCommit == nil {
		out.SignCommit = boolPtr(defaultSignCommit)
	}
	if out.UdacityStyleCommit == nil {
		out.UdacityStyleCommit = boolPtr(defaultUdacityStyleCommit)
	}
	return out
}

// Complete reports whether every field is defined.
func (p Preferences) Complete() bool {
	return p.AddAllFiles != nil && p.EmojiFormat != nil && p.SignCommit != nil && p.UdacityStyleCommit != nil
}

// Clone returns a deep copy so callers can't reach the store's pointers.
func (p Preferences) Clone() Preferences {
	var out Preferences
	if p.AddAllFiles != nil {
		out.AddAllFiles = boolPtr(*p.AddAllFiles)
	}
	if p.EmojiFormat != nil {
		f := *p.EmojiFormat
		out.EmojiFormat = &f
	}
	if p.SignCommit != nil {
		out.SignCommit = boolPtr(*p.SignCommit)
	}
	if p.UdacityStyleCommit != nil {
		out.UdacityStyleCommit = boolPtr(*p.UdacityStyleCommit)
	}
	return out
}

// Values maps each key to its value, or nil when undefined.
func (p Preferences) Values() map[string]any {
	values := map[string]any{
		KeyAddAllFiles:        nil,
		KeyEmojiFormat:        nil,
		KeySignCommit:         nil,
		KeyUdacityStyleCommit: nil,
	}
	if p.AddAllFiles != nil {
		values[KeyAddAllFiles] = *p.AddAllFiles
	}
	if p.EmojiFormat != nil {
		values[KeyEmojiFormat] = *p.EmojiFormat
	}
	if p.SignCommit != nil {
		values[KeySignCommit] = *p.SignCommit
	}
	if p.UdacityStyleCommit != nil {
		values[KeyUdacityStyleCommit] = *p.UdacityStyleCommit
	}
	return values
}

func (p *Preferences) SetAddAllFiles(v bool) { p.AddAllFiles = boolPtr(v) }

func (p *Preferences) SetEmojiFormat(f EmojiFormat) { p.EmojiFormat = &f }

func (p *Preferences) SetSignCommit(v bool) { p.SignCommit = boolPtr(v) }

func (p *Preferences) SetUdacityStyleCommit(v bool) { p.UdacityStyleCommit = boolPtr(v) }

// Format returns the emoji format, falling back to the default when unset.
func (p Preferences) Format() EmojiFormat {
	if p.EmojiFormat == nil {
		return defaultEmojiFormat
	}
	return *p.EmojiFormat
}

func (p Preferences) AddAll() bool {
	return valueOr(p.AddAllFiles, defaultAddAllFiles)
}

func (p Preferences) Sign() bool {
	return valueOr(p.SignCommit, defaultSignCommit)
}

func (p Preferences) UdacityStyle() bool {
	return valueOr(p.UdacityStyleCommit, defaultUdacityStyleCommit)
}

func boolPtr(v bool) *bool {
	return &v
}

func valueOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
