// License: GPLv3 Copyright: 2024, Kovid Goyal, <kovid at kovidgoyal.net>

package icons

import (
	"fmt"
	"sync"
)

var _ = fmt.Print

// Icon identifies an icon by the name of its asset, for example "lang_go".
// It is the key into the generated components and the terminal glyph table.
type Icon string

func (i Icon) String() string { return string(i) }

// Glyph returns the Nerd Font code point used to draw the icon in a terminal.
// Icons without a glyph of their own are drawn as DefaultIcon.
func (i Icon) Glyph() rune {
	if g, found := glyphs()[i]; found {
		return g
	}
	return glyphs()[DefaultIcon]
}

// file types {{{
const (
	AUDIO               Icon = "audio"
	BINARY              Icon = "binary"
	BOOK                Icon = "book"
	CACHE               Icon = "cache"
	CAD                 Icon = "cad"
	CALENDAR            Icon = "calendar"
	CLOCK               Icon = "clock"
	COMPRESSED          Icon = "compressed"
	CONFIG              Icon = "config"
	CSS3                Icon = "css3"
	DATABASE            Icon = "database"
	DIFF                Icon = "diff"
	DISK_IMAGE          Icon = "disk_image"
	DOCKER              Icon = "docker"
	DOCUMENT            Icon = "document"
	DOWNLOAD            Icon = "download"
	EDA_PCB             Icon = "eda_pcb"
	EDA_SCH             Icon = "eda_sch"
	EMACS               Icon = "emacs"
	ESLINT              Icon = "eslint"
	FILE                Icon = "file"
	FILE_3D             Icon = "file_3d"
	FILE_OUTLINE        Icon = "file_outline"
	FOLDER              Icon = "folder"
	FOLDER_CONFIG       Icon = "folder_config"
	FOLDER_EXERCISM     Icon = "folder_exercism"
	FOLDER_GIT          Icon = "folder_git"
	FOLDER_GITHUB       Icon = "folder_github"
	FOLDER_HIDDEN       Icon = "folder_hidden"
	FOLDER_KEY          Icon = "folder_key"
	FOLDER_NPM          Icon = "folder_npm"
	FOLDER_OCAML        Icon = "folder_ocaml"
	FOLDER_OPEN         Icon = "folder_open"
	FONT                Icon = "font"
	FREECAD             Icon = "freecad"
	GIMP                Icon = "gimp"
	GIST_SECRET         Icon = "gist_secret"
	GIT                 Icon = "git"
	GODOT               Icon = "godot"
	GRADLE              Icon = "gradle"
	GRAPH               Icon = "graph"
	GRAPHQL             Icon = "graphql"
	GRUNT               Icon = "grunt"
	GTK                 Icon = "gtk"
	GULP                Icon = "gulp"
	HTML5               Icon = "html5"
	IMAGE               Icon = "image"
	INFO                Icon = "info"
	INTELLIJ            Icon = "intellij"
	JSON                Icon = "json"
	KDENLIVE            Icon = "kdenlive"
	KEY                 Icon = "key"
	KEYPASS             Icon = "keypass"
	KICAD               Icon = "kicad"
	KRITA               Icon = "krita"
	LANG_ARDUINO        Icon = "lang_arduino"
	LANG_ASSEMBLY       Icon = "lang_assembly"
	LANG_C              Icon = "lang_c"
	LANG_CPP            Icon = "lang_cpp"
	LANG_CSHARP         Icon = "lang_csharp"
	LANG_D              Icon = "lang_d"
	LANG_ELIXIR         Icon = "lang_elixir"
	LANG_FENNEL         Icon = "lang_fennel"
	LANG_FORTRAN        Icon = "lang_fortran"
	LANG_FSHARP         Icon = "lang_fsharp"
	LANG_GLEAM          Icon = "lang_gleam"
	LANG_GO             Icon = "lang_go"
	LANG_GROOVY         Icon = "lang_groovy"
	LANG_HASKELL        Icon = "lang_haskell"
	LANG_HDL            Icon = "lang_hdl"
	LANG_HOLYC          Icon = "lang_holyc"
	LANG_JAVA           Icon = "lang_java"
	LANG_JAVASCRIPT     Icon = "lang_javascript"
	LANG_KOTLIN         Icon = "lang_kotlin"
	LANG_LUA            Icon = "lang_lua"
	LANG_NIM            Icon = "lang_nim"
	LANG_OCAML          Icon = "lang_ocaml"
	LANG_PERL           Icon = "lang_perl"
	LANG_PHP            Icon = "lang_php"
	LANG_PYTHON         Icon = "lang_python"
	LANG_R              Icon = "lang_r"
	LANG_RUBY           Icon = "lang_ruby"
	LANG_RUBYRAILS      Icon = "lang_rubyrails"
	LANG_RUST           Icon = "lang_rust"
	LANG_SASS           Icon = "lang_sass"
	LANG_SCHEME         Icon = "lang_scheme"
	LANG_STYLUS         Icon = "lang_stylus"
	LANG_TEX            Icon = "lang_tex"
	LANG_TYPESCRIPT     Icon = "lang_typescript"
	LANG_TYPESCRIPT_DEF Icon = "lang_typescript_def"
	LANG_V              Icon = "lang_v"
	LIBRARY             Icon = "library"
	LICENSE             Icon = "license"
	LOCK                Icon = "lock"
	LOG                 Icon = "log"
	MAKE                Icon = "make"
	MARKDOWN            Icon = "markdown"
	MUSTACHE            Icon = "mustache"
	NAMED_PIPE          Icon = "named_pipe"
	NODEJS              Icon = "nodejs"
	NOTEBOOK            Icon = "notebook"
	NPM                 Icon = "npm"
	OS_ANDROID          Icon = "os_android"
	OS_APPLE            Icon = "os_apple"
	OS_LINUX            Icon = "os_linux"
	OS_WINDOWS          Icon = "os_windows"
	OS_WINDOWS_CMD      Icon = "os_windows_cmd"
	PLAYLIST            Icon = "playlist"
	POWERSHELL          Icon = "powershell"
	PRIVATE_KEY         Icon = "private_key"
	PUBLIC_KEY          Icon = "public_key"
	QT                  Icon = "qt"
	RAZOR               Icon = "razor"
	REACT               Icon = "react"
	README              Icon = "readme"
	SHEET               Icon = "sheet"
	SHELL               Icon = "shell"
	SHELL_CMD           Icon = "shell_cmd"
	SHIELD_CHECK        Icon = "shield_check"
	SHIELD_KEY          Icon = "shield_key"
	SHIELD_LOCK         Icon = "shield_lock"
	SIGNED_FILE         Icon = "signed_file"
	SLIDE               Icon = "slide"
	SOCKET              Icon = "socket"
	SQLITE              Icon = "sqlite"
	SUBLIME             Icon = "sublime"
	SUBTITLE            Icon = "subtitle"
	SYMLINK             Icon = "symlink"
	SYMLINK_TO_DIR      Icon = "symlink_to_dir"
	TERRAFORM           Icon = "terraform"
	TEST                Icon = "test"
	TEXT                Icon = "text"
	TMUX                Icon = "tmux"
	TOML                Icon = "toml"
	TRANSLATION         Icon = "translation"
	TYPST               Icon = "typst"
	UNITY               Icon = "unity"
	VECTOR              Icon = "vector"
	VIDEO               Icon = "video"
	VIM                 Icon = "vim"
	WRENCH              Icon = "wrench"
	XML                 Icon = "xml"
	YAML                Icon = "yaml"
	YARN                Icon = "yarn"
) // }}}

// DefaultIcon is returned when no table matches.
const DefaultIcon = FILE

var glyphs = sync.OnceValue(func() map[Icon]rune { // {{{
	return map[Icon]rune{
		AUDIO:               0xf001,  // 
		BINARY:              0xeae8,  // 
		BOOK:                0xe28b,  // 
		CACHE:               0xf49b,  // 
		CAD:                 0xf0eeb, // 󰻫
		CALENDAR:            0xeab0,  // 
		CLOCK:               0xf43a,  // 
		COMPRESSED:          0xf410,  // 
		CONFIG:              0xe615,  // 
		CSS3:                0xe749,  // 
		DATABASE:            0xf1c0,  // 
		DIFF:                0xf440,  // 
		DISK_IMAGE:          0xe271,  // 
		DOCKER:              0xe650,  // 
		DOCUMENT:            0xf1c2,  // 
		DOWNLOAD:            0xf01da, // 󰇚
		EDA_PCB:             0xeabe,  // 
		EDA_SCH:             0xf0b45, // 󰭅
		EMACS:               0xe632,  // 
		ESLINT:              0xe655,  // 
		FILE:                0xf15b,  // 
		FILE_3D:             0xf01a7, // 󰆧
		FILE_OUTLINE:        0xf016,  // 
		FOLDER:              0xe5ff,  // 
		FOLDER_CONFIG:       0xe5fc,  // 
		FOLDER_EXERCISM:     0xebe5,  // 
		FOLDER_GIT:          0xe5fb,  // 
		FOLDER_GITHUB:       0xe5fd,  // 
		FOLDER_HIDDEN:       0xf179e, // 󱞞
		FOLDER_KEY:          0xf08ac, // 󰢬
		FOLDER_NPM:          0xe5fa,  // 
		FOLDER_OCAML:        0xe67a,  // 
		FOLDER_OPEN:         0xf115,  // 
		FONT:                0xf031,  // 
		FREECAD:             0xf336,  // 
		GIMP:                0xf338,  // 
		GIST_SECRET:         0xeafa,  // 
		GIT:                 0xf1d3,  // 
		GODOT:               0xe65f,  // 
		GRADLE:              0xe660,  // 
		GRAPH:               0xf1049, // 󱁉
		GRAPHQL:             0xe662,  // 
		GRUNT:               0xe611,  // 
		GTK:                 0xf362,  // 
		GULP:                0xe610,  // 
		HTML5:               0xf13b,  // 
		IMAGE:               0xf1c5,  // 
		INFO:                0xf129,  // 
		INTELLIJ:            0xe7b5,  // 
		JSON:                0xe60b,  // 
		KDENLIVE:            0xf33c,  // 
		KEY:                 0xeb11,  // 
		KEYPASS:             0xf23e,  // 
		KICAD:               0xf34c,  // 
		KRITA:               0xf33d,  // 
		LANG_ARDUINO:        0xf34b,  // 
		LANG_ASSEMBLY:       0xe637,  // 
		LANG_C:              0xe61e,  // 
		LANG_CPP:            0xe61d,  // 
		LANG_CSHARP:         0xf031b, // 󰌛
		LANG_D:              0xe7af,  // 
		LANG_ELIXIR:         0xe62d,  // 
		LANG_FENNEL:         0xe6af,  // 
		LANG_FORTRAN:        0xf121a, // 󱈚
		LANG_FSHARP:         0xe7a7,  // 
		LANG_GLEAM:          0xf09a5, // 󰦥
		LANG_GO:             0xe65e,  // 
		LANG_GROOVY:         0xe775,  // 
		LANG_HASKELL:        0xe777,  // 
		LANG_HDL:            0xf035b, // 󰍛
		LANG_HOLYC:          0xf00a2, // 󰂢
		LANG_JAVA:           0xe256,  // 
		LANG_JAVASCRIPT:     0xe74e,  // 
		LANG_KOTLIN:         0xe634,  // 
		LANG_LUA:            0xe620,  // 
		LANG_NIM:            0xe677,  // 
		LANG_OCAML:          0xe67a,  // 
		LANG_PERL:           0xe67e,  // 
		LANG_PHP:            0xe73d,  // 
		LANG_PYTHON:         0xe606,  // 
		LANG_R:              0xe68a,  // 
		LANG_RUBY:           0xe739,  // 
		LANG_RUBYRAILS:      0xe73b,  // 
		LANG_RUST:           0xe68b,  // 
		LANG_SASS:           0xe603,  // 
		LANG_SCHEME:         0xe6b1,  // 
		LANG_STYLUS:         0xe600,  // 
		LANG_TEX:            0xe69b,  // 
		LANG_TYPESCRIPT:     0xe628,  // 
		LANG_TYPESCRIPT_DEF: 0xf06e6, // 󰛦
		LANG_V:              0xe6ac,  // 
		LIBRARY:             0xeb9c,  // 
		LICENSE:             0xf02d,  // 
		LOCK:                0xf023,  // 
		LOG:                 0xf18d,  // 
		MAKE:                0xe673,  // 
		MARKDOWN:            0xf48a,  // 
		MUSTACHE:            0xe60f,  // 
		NAMED_PIPE:          0xf07e5, // 󰟥
		NODEJS:              0xe718,  // 
		NOTEBOOK:            0xe678,  // 
		NPM:                 0xe71e,  // 
		OS_ANDROID:          0xe70e,  // 
		OS_APPLE:            0xf179,  // 
		OS_LINUX:            0xf17c,  // 
		OS_WINDOWS:          0xf17a,  // 
		OS_WINDOWS_CMD:      0xebc4,  // 
		PLAYLIST:            0xf0cb9, // 󰲹
		POWERSHELL:          0xebc7,  // 
		PRIVATE_KEY:         0xf0306, // 󰌆
		PUBLIC_KEY:          0xf0dd6, // 󰷖
		QT:                  0xf375,  // 
		RAZOR:               0xf1fa,  // 
		REACT:               0xe7ba,  // 
		README:              0xf00ba, // 󰂺
		SHEET:               0xf1c3,  // 
		SHELL:               0xf1183, // 󱆃
		SHELL_CMD:           0xf489,  // 
		SHIELD_CHECK:        0xf0565, // 󰕥
		SHIELD_KEY:          0xf0bc4, // 󰯄
		SHIELD_LOCK:         0xf099d, // 󰦝
		SIGNED_FILE:         0xf19c3, // 󱧃
		SLIDE:               0xf1c4,  // 
		SOCKET:              0xf0427, // 󰐧
		SQLITE:              0xe7c4,  // 
		SUBLIME:             0xe7aa,  // 
		SUBTITLE:            0xf0a16, // 󰨖
		SYMLINK:             0xf481,  // 
		SYMLINK_TO_DIR:      0xf482,  // 
		TERRAFORM:           0xf1062, // 󱁢
		TEST:                0xf0668, // 󰙨
		TEXT:                0xf15c,  // 
		TMUX:                0xebc8,  // 
		TOML:                0xe6b2,  // 
		TRANSLATION:         0xf05ca, // 󰗊
		TYPST:               0xf37f,  // 
		UNITY:               0xe721,  // 
		VECTOR:              0xf0559, // 󰕙
		VIDEO:               0xf03d,  // 
		VIM:                 0xe7c5,  // 
		WRENCH:              0xf0ad,  // 
		XML:                 0xf05c0, // 󰗀
		YAML:                0xe6a8,  // 
		YARN:                0xe6a7,  // 
	}
}) // }}}
