package prompt

import (
	"bytes"
	"testing"

	"github.com/Spiderpig86/gittr/internal/config"
	"github.com/Spiderpig86/gittr/internal/emoji"
	"github.com/Spiderpig86/gittr/internal/i18n"
	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

var testCatalog = []emoji.Emoji{
	{Name: "tada", Emoji: "🎉", Code: ":tada:", Description: "party"},
	{Name: "bug", Emoji: "🐛", Code: ":bug:", Description: "insect issue"},
}

type fixture struct {
	args    Args
	ui      *MockUI
	git     *MockGitService
	catalog *MockCatalog
	store   *memStore
	out     *bytes.Buffer
}

func setupFixture(t *testing.T, prefs config.Preferences) *fixture {
	t.Helper()
	color.NoColor = true

	trans, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)

	f := &fixture{
		ui:      new(MockUI),
		git:     new(MockGitService),
		catalog: new(MockCatalog),
		store:   &memStore{prefs: prefs},
		out:     &bytes.Buffer{},
	}
	f.args = Args{
		Store:   f.store,
		Catalog: f.catalog,
		Git:     f.git,
		UI:      f.ui,
		T:       trans,
		Out:     f.out,
	}
	return f
}

func prefsWith(addAll bool, format config.EmojiFormat, sign, udacity bool) config.Preferences {
	var p config.Preferences
	p.SetAddAllFiles(addAll)
	p.SetEmojiFormat(format)
	p.SetSignCommit(sign)
	p.SetUdacityStyleCommit(udacity)
	return p
}
