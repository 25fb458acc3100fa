// License: GPLv3 Copyright: 2024, Kovid Goyal, <kovid at kovidgoyal.net>

package icons

import (
	"fmt"
	"sync"
)

var _ = fmt.Print

// DirectoryNameMap maps lowercase directory names to icons.
var DirectoryNameMap = sync.OnceValue(func() map[string]Icon { // {{{
	return map[string]Icon{
		".config":       FOLDER_CONFIG,
		".exercism":     FOLDER_EXERCISM,
		".git":          FOLDER_GIT,
		".github":       FOLDER_GITHUB,
		".npm":          FOLDER_NPM,
		".opam":         FOLDER_OCAML,
		".ssh":          FOLDER_KEY,
		"cabal":         LANG_HASKELL,
		"config":        FOLDER_CONFIG,
		"cron.d":        FOLDER_CONFIG,
		"cron.daily":    FOLDER_CONFIG,
		"cron.hourly":   FOLDER_CONFIG,
		"cron.minutely": FOLDER_CONFIG,
		"cron.monthly":  FOLDER_CONFIG,
		"cron.weekly":   FOLDER_CONFIG,
		"etc":           FOLDER_CONFIG,
		"hidden":        FOLDER_HIDDEN,
		"include":       FOLDER_CONFIG,
		"node_modules":  FOLDER_NPM,
		"npm_cache":     FOLDER_NPM,
		"pam.d":         FOLDER_KEY,
		"ssh":           FOLDER_KEY,
		"sudoers.d":     FOLDER_KEY,
		"xbps.d":        FOLDER_CONFIG,
		"xorg.conf.d":   FOLDER_CONFIG,
	}
}) // }}}

// FileNameMap maps lowercase file names to icons. It is consulted before
// ExtensionMap, so an entry here wins over the extension of the same name.
var FileNameMap = sync.OnceValue(func() map[string]Icon { // {{{
	return map[string]Icon{
		"._ds_store":             OS_APPLE,
		".aliases":               SHELL,
		".bash_aliases":          SHELL,
		".bash_history":          SHELL,
		".bash_logout":           SHELL,
		".bash_profile":          SHELL,
		".bashrc":                SHELL,
		".cfusertextencoding":    OS_APPLE,
		".clang-format":          CONFIG,
		".clang-tidy":            CONFIG,
		".cshrc":                 SHELL,
		".ds_store":              OS_APPLE,
		".emacs":                 EMACS,
		".eslintignore":          ESLINT,
		".eslintrc.cjs":          ESLINT,
		".eslintrc.js":           ESLINT,
		".eslintrc.json":         ESLINT,
		".eslintrc.yaml":         ESLINT,
		".eslintrc.yml":          ESLINT,
		".fennelrc":              LANG_FENNEL,
		".git-blame-ignore-revs": GIT,
		".gitattributes":         GIT,
		".gitconfig":             GIT,
		".gitignore":             GIT,
		".gitignore_global":      GIT,
		".gitmodules":            GIT,
		".gtkrc-2.0":             GTK,
		".gvimrc":                VIM,
		".htaccess":              CONFIG,
		".htpasswd":              CONFIG,
		".idea":                  INTELLIJ,
		".ideavimrc":             VIM,
		".inputrc":               CONFIG,
		".kshrc":                 SHELL,
		".login":                 SHELL,
		".logout":                SHELL,
		".luacheckrc":            CONFIG,
		".luaurc":                CONFIG,
		".mailmap":               GIT,
		".node_repl_history":     NODEJS,
		".npmignore":             NPM,
		".npmrc":                 NPM,
		".ocamlinit":             LANG_OCAML,
		".parentlock":            LOCK,
		".profile":               SHELL,
		".pylintrc":              CONFIG,
		".python_history":        LANG_PYTHON,
		".rustfmt.toml":          LANG_RUST,
		".rvm":                   LANG_RUBY,
		".rvmrc":                 LANG_RUBY,
		".tcshrc":                SHELL,
		".viminfo":               VIM,
		".vimrc":                 VIM,
		".xauthority":            CONFIG,
		".xinitrc":               CONFIG,
		".xresources":            CONFIG,
		".yarnrc":                YARN,
		".zlogin":                SHELL,
		".zlogout":               SHELL,
		".zprofile":              SHELL,
		".zsh_history":           SHELL,
		".zsh_sessions":          SHELL,
		".zshenv":                SHELL,
		".zshrc":                 SHELL,
		"_gvimrc":                VIM,
		"_vimrc":                 VIM,
		"a.out":                  SHELL_CMD,
		"bashrc":                 SHELL,
		"build.gradle.kts":       GRADLE,
		"cargo.lock":             LANG_RUST,
		"cargo.toml":             LANG_RUST,
		"commit_editmsg":         GIT,
		"compose.yaml":           DOCKER,
		"compose.yml":            DOCKER,
		"composer.json":          LANG_PHP,
		"composer.lock":          LANG_PHP,
		"config":                 CONFIG,
		"config.ru":              LANG_RUBY,
		"config.status":          CONFIG,
		"configure":              WRENCH,
		"configure.ac":           CONFIG,
		"configure.in":           CONFIG,
		"constraints.txt":        LANG_PYTHON,
		"copying":                LICENSE,
		"copyright":              LICENSE,
		"crontab":                CONFIG,
		"crypttab":               CONFIG,
		"csh.cshrc":              SHELL,
		"csh.login":              SHELL,
		"csh.logout":             SHELL,
		"docker-compose.yaml":    DOCKER,
		"docker-compose.yml":     DOCKER,
		"dockerfile":             DOCKER,
		"dune":                   LANG_OCAML,
		"dune-project":           WRENCH,
		"environment":            CONFIG,
		"fennelrc":               LANG_FENNEL,
		"fonts.conf":             FONT,
		"fp-info-cache":          KICAD,
		"fp-lib-table":           KICAD,
		"freecad.conf":           FREECAD,
		"gemfile":                LANG_RUBY,
		"gemfile.lock":           LANG_RUBY,
		"gnumakefile":            MAKE,
		"go.mod":                 LANG_GO,
		"go.sum":                 LANG_GO,
		"go.work":                LANG_GO,
		"gradle":                 GRADLE,
		"gradle.properties":      GRADLE,
		"gradlew":                GRADLE,
		"gradlew.bat":            GRADLE,
		"group":                  LOCK,
		"gruntfile.coffee":       GRUNT,
		"gruntfile.js":           GRUNT,
		"gruntfile.ls":           GRUNT,
		"gshadow":                LOCK,
		"gtkrc":                  GTK,
		"gulpfile.coffee":        GULP,
		"gulpfile.js":            GULP,
		"gulpfile.ls":            GULP,
		"hostname":               CONFIG,
		"id_dsa":                 PRIVATE_KEY,
		"id_ecdsa":               PRIVATE_KEY,
		"id_ecdsa_sk":            PRIVATE_KEY,
		"id_ed25519":             PRIVATE_KEY,
		"id_ed25519_sk":          PRIVATE_KEY,
		"id_rsa":                 PRIVATE_KEY,
		"inputrc":                CONFIG,
		"jsconfig.json":          LANG_JAVASCRIPT,
		"justfile":               WRENCH,
		"kdenlive-layoutsrc":     KDENLIVE,
		"kdenliverc":             KDENLIVE,
		"kritadisplayrc":         KRITA,
		"kritarc":                KRITA,
		"licence":                LICENSE,
		"licence.md":             LICENSE,
		"licence.txt":            LICENSE,
		"license":                LICENSE,
		"license-apache":         LICENSE,
		"license-mit":            LICENSE,
		"license.md":             LICENSE,
		"license.txt":            LICENSE,
		"localized":              OS_APPLE,
		"localtime":              CLOCK,
		"lock":                   LOCK,
		"log":                    LOG,
		"makefile":               MAKE,
		"makefile.ac":            MAKE,
		"makefile.am":            MAKE,
		"makefile.in":            MAKE,
		"manifest":               LANG_PYTHON,
		"manifest.in":            LANG_PYTHON,
		"mix.lock":               LANG_ELIXIR,
		"npm-shrinkwrap.json":    NPM,
		"npmrc":                  NPM,
		"package-lock.json":      NPM,
		"package.json":           NPM,
		"passwd":                 LOCK,
		"php.ini":                LANG_PHP,
		"profile":                SHELL,
		"pyproject.toml":         LANG_PYTHON,
		"pyvenv.cfg":             LANG_PYTHON,
		"qt5ct.conf":             QT,
		"qt6ct.conf":             QT,
		"qtproject.conf":         QT,
		"rakefile":               LANG_RUBY,
		"readme":                 README,
		"readme.md":              README,
		"release.toml":           LANG_RUST,
		"requirements.txt":       LANG_PYTHON,
		"rubydoc":                LANG_RUBYRAILS,
		"rvmrc":                  LANG_RUBY,
		"settings.gradle.kts":    GRADLE,
		"shadow":                 LOCK,
		"shells":                 CONFIG,
		"sudoers":                LOCK,
		"sxhkdrc":                CONFIG,
		"sym-lib-table":          KICAD,
		"timezone":               CLOCK,
		"tmux.conf":              TMUX,
		"tmux.conf.local":        TMUX,
		"tsconfig.json":          LANG_TYPESCRIPT,
		"yarn.lock":              YARN,
		"zlogin":                 SHELL,
		"zlogout":                SHELL,
		"zprofile":               SHELL,
		"zshenv":                 SHELL,
		"zshrc":                  SHELL,
	}
}) // }}}

// ExtensionMap maps lowercase extensions, without the leading dot, to icons.
// Keys with an inner dot, such as "d.ts", are compound extensions and win
// over the final segment alone.
var ExtensionMap = sync.OnceValue(func() map[string]Icon { // {{{
	return map[string]Icon{
		"123dx":            CAD,
		"3dm":              CAD,
		"3g2":              VIDEO,
		"3gp":              VIDEO,
		"3gp2":             VIDEO,
		"3gpp":             VIDEO,
		"3gpp2":            VIDEO,
		"3mf":              FILE_3D,
		"7z":               COMPRESSED,
		"a":                OS_LINUX,
		"aac":              AUDIO,
		"age":              SHIELD_LOCK,
		"aif":              AUDIO,
		"aifc":             AUDIO,
		"aiff":             AUDIO,
		"alac":             AUDIO,
		"android":          OS_ANDROID,
		"ape":              AUDIO,
		"apk":              OS_ANDROID,
		"app":              BINARY,
		"apple":            OS_APPLE,
		"applescript":      OS_APPLE,
		"ar":               COMPRESSED,
		"arj":              COMPRESSED,
		"arw":              IMAGE,
		"asc":              SHIELD_LOCK,
		"asm":              LANG_ASSEMBLY,
		"ass":              SUBTITLE,
		"avi":              VIDEO,
		"avif":             IMAGE,
		"avro":             JSON,
		"awk":              SHELL_CMD,
		"bash":             SHELL_CMD,
		"bat":              OS_WINDOWS_CMD,
		"bats":             SHELL_CMD,
		"bdf":              FONT,
		"bib":              LANG_TEX,
		"bin":              BINARY,
		"bmp":              IMAGE,
		"br":               COMPRESSED,
		"brd":              EDA_PCB,
		"brep":             CAD,
		"bst":              LANG_TEX,
		"bundle":           OS_APPLE,
		"bz":               COMPRESSED,
		"bz2":              COMPRESSED,
		"bz3":              COMPRESSED,
		"c":                LANG_C,
		"c++":              LANG_CPP,
		"cab":              OS_WINDOWS,
		"cache":            CACHE,
		"cast":             VIDEO,
		"catpart":          CAD,
		"catproduct":       CAD,
		"cbr":              IMAGE,
		"cbz":              IMAGE,
		"cc":               LANG_CPP,
		"cert":             GIST_SECRET,
		"cfg":              CONFIG,
		"cjs":              LANG_JAVASCRIPT,
		"class":            LANG_JAVA,
		"cls":              LANG_TEX,
		"cmd":              OS_WINDOWS,
		"conf":             CONFIG,
		"config":           CONFIG,
		"cp":               LANG_CPP,
		"cpio":             COMPRESSED,
		"cpp":              LANG_CPP,
		"cr2":              IMAGE,
		"crdownload":       DOWNLOAD,
		"crt":              GIST_SECRET,
		"cs":               LANG_CSHARP,
		"csh":              SHELL_CMD,
		"cshtml":           RAZOR,
		"csproj":           LANG_CSHARP,
		"css":              CSS3,
		"csv":              SHEET,
		"csx":              LANG_CSHARP,
		"cts":              LANG_TYPESCRIPT,
		"cue":              PLAYLIST,
		"cxx":              LANG_CPP,
		"d":                LANG_D,
		"d.cts":            LANG_TYPESCRIPT_DEF,
		"d.mts":            LANG_TYPESCRIPT_DEF,
		"d.ts":             LANG_TYPESCRIPT_DEF,
		"db":               DATABASE,
		"db3":              SQLITE,
		"dconf":            DATABASE,
		"di":               LANG_D,
		"diff":             DIFF,
		"djv":              DOCUMENT,
		"djvu":             DOCUMENT,
		"dll":              LIBRARY,
		"dmg":              DISK_IMAGE,
		"doc":              DOCUMENT,
		"dockerfile":       DOCKER,
		"dockerignore":     DOCKER,
		"docm":             DOCUMENT,
		"docx":             DOCUMENT,
		"dot":              GRAPH,
		"download":         DOWNLOAD,
		"dump":             DATABASE,
		"dvi":              IMAGE,
		"dwg":              CAD,
		"dxf":              CAD,
		"dylib":            OS_APPLE,
		"ebook":            BOOK,
		"eex":              LANG_ELIXIR,
		"el":               EMACS,
		"elc":              EMACS,
		"elf":              BINARY,
		"eot":              FONT,
		"eps":              VECTOR,
		"epub":             BOOK,
		"erb":              LANG_RUBYRAILS,
		"ex":               LANG_ELIXIR,
		"exe":              OS_WINDOWS_CMD,
		"exs":              LANG_ELIXIR,
		"f":                LANG_FORTRAN,
		"f#":               LANG_FSHARP,
		"f3d":              CAD,
		"f3z":              CAD,
		"f90":              LANG_FORTRAN,
		"fbx":              FILE_3D,
		"fcbak":            FREECAD,
		"fcmacro":          FREECAD,
		"fcmat":            FREECAD,
		"fcparam":          FREECAD,
		"fcscript":         FREECAD,
		"fcstd":            FREECAD,
		"fcstd1":           FREECAD,
		"fctb":             FREECAD,
		"fctl":             FREECAD,
		"fdmdownload":      DOWNLOAD,
		"fish":             SHELL_CMD,
		"flac":             AUDIO,
		"flc":              FONT,
		"flf":              FONT,
		"flv":              VIDEO,
		"fnl":              LANG_FENNEL,
		"fnt":              FONT,
		"fon":              FONT,
		"font":             FONT,
		"for":              LANG_FORTRAN,
		"fs":               LANG_FSHARP,
		"fsi":              LANG_FSHARP,
		"fsproj":           LANG_FSHARP,
		"fsscript":         LANG_FSHARP,
		"fsx":              LANG_FSHARP,
		"gbl":              EDA_PCB,
		"gbo":              EDA_PCB,
		"gbp":              EDA_PCB,
		"gbr":              EDA_PCB,
		"gbs":              EDA_PCB,
		"gd":               GODOT,
		"gdoc":             DOCUMENT,
		"gem":              LANG_RUBY,
		"gemfile":          LANG_RUBY,
		"gemspec":          LANG_RUBY,
		"gif":              IMAGE,
		"git":              GIT,
		"gleam":            LANG_GLEAM,
		"gm1":              EDA_PCB,
		"gml":              EDA_PCB,
		"go":               LANG_GO,
		"godot":            GODOT,
		"gpg":              SHIELD_LOCK,
		"gql":              GRAPHQL,
		"gradle":           GRADLE,
		"graphql":          GRAPHQL,
		"gresource":        GTK,
		"groovy":           LANG_GROOVY,
		"gsheet":           SHEET,
		"gslides":          SLIDE,
		"gtl":              EDA_PCB,
		"gto":              EDA_PCB,
		"gtp":              EDA_PCB,
		"gts":              EDA_PCB,
		"guardfile":        LANG_RUBY,
		"gv":               GRAPH,
		"gvy":              LANG_GROOVY,
		"gz":               COMPRESSED,
		"h":                LANG_C,
		"h++":              LANG_CPP,
		"h264":             VIDEO,
		"hbs":              MUSTACHE,
		"hc":               LANG_HOLYC,
		"heic":             IMAGE,
		"heics":            VIDEO,
		"heif":             IMAGE,
		"hh":               LANG_CPP,
		"hi":               BINARY,
		"hpp":              LANG_CPP,
		"hs":               LANG_HASKELL,
		"htm":              HTML5,
		"html":             HTML5,
		"hxx":              LANG_CPP,
		"iam":              CAD,
		"ical":             CALENDAR,
		"icalendar":        CALENDAR,
		"ico":              IMAGE,
		"ics":              CALENDAR,
		"ifb":              CALENDAR,
		"ifc":              CAD,
		"ige":              CAD,
		"iges":             CAD,
		"igs":              CAD,
		"image":            DISK_IMAGE,
		"img":              DISK_IMAGE,
		"iml":              INTELLIJ,
		"info":             INFO,
		"ini":              CONFIG,
		"inl":              LANG_C,
		"ino":              LANG_ARDUINO,
		"ipt":              CAD,
		"ipynb":            NOTEBOOK,
		"iso":              DISK_IMAGE,
		"j2c":              IMAGE,
		"j2k":              IMAGE,
		"jad":              LANG_JAVA,
		"jar":              LANG_JAVA,
		"java":             LANG_JAVA,
		"jfi":              IMAGE,
		"jfif":             IMAGE,
		"jif":              IMAGE,
		"jmd":              MARKDOWN,
		"jp2":              IMAGE,
		"jpe":              IMAGE,
		"jpeg":             IMAGE,
		"jpf":              IMAGE,
		"jpg":              IMAGE,
		"jpx":              IMAGE,
		"js":               LANG_JAVASCRIPT,
		"json":             JSON,
		"json5":            JSON,
		"jsonc":            JSON,
		"jsx":              REACT,
		"jxl":              IMAGE,
		"kbx":              SHIELD_KEY,
		"kdb":              KEYPASS,
		"kdbx":             KEYPASS,
		"kdenlive":         KDENLIVE,
		"kdenlivetitle":    KDENLIVE,
		"key":              KEY,
		"kicad_dru":        KICAD,
		"kicad_mod":        KICAD,
		"kicad_pcb":        KICAD,
		"kicad_prl":        KICAD,
		"kicad_pro":        KICAD,
		"kicad_sch":        KICAD,
		"kicad_sym":        KICAD,
		"kicad_wks":        KICAD,
		"ko":               OS_LINUX,
		"kpp":              KRITA,
		"kra":              KRITA,
		"krz":              KRITA,
		"ksh":              SHELL_CMD,
		"kt":               LANG_KOTLIN,
		"kts":              LANG_KOTLIN,
		"latex":            LANG_TEX,
		"lbr":              LIBRARY,
		"lck":              LOCK,
		"ldb":              DATABASE,
		"leex":             LANG_ELIXIR,
		"lff":              FONT,
		"lhs":              LANG_HASKELL,
		"lib":              LIBRARY,
		"license":          LICENSE,
		"localized":        OS_APPLE,
		"lock":             LOCK,
		"log":              LOG,
		"lpp":              EDA_PCB,
		"lrc":              SUBTITLE,
		"ltx":              LANG_TEX,
		"lua":              LANG_LUA,
		"luac":             LANG_LUA,
		"luau":             LANG_LUA,
		"lz":               COMPRESSED,
		"lz4":              COMPRESSED,
		"lzh":              COMPRESSED,
		"lzma":             COMPRESSED,
		"lzo":              COMPRESSED,
		"m":                LANG_C,
		"m2ts":             VIDEO,
		"m2v":              VIDEO,
		"m3u":              PLAYLIST,
		"m3u8":             PLAYLIST,
		"m4a":              AUDIO,
		"m4v":              VIDEO,
		"markdown":         MARKDOWN,
		"md":               MARKDOWN,
		"md5":              SHIELD_CHECK,
		"mdb":              DATABASE,
		"mdx":              MARKDOWN,
		"mjs":              LANG_JAVASCRIPT,
		"mk":               MAKE,
		"mka":              AUDIO,
		"mkd":              MARKDOWN,
		"mkv":              VIDEO,
		"ml":               LANG_OCAML,
		"mli":              LANG_OCAML,
		"mll":              LANG_OCAML,
		"mly":              LANG_OCAML,
		"mm":               LANG_CPP,
		"mo":               TRANSLATION,
		"mobi":             BOOK,
		"mov":              VIDEO,
		"mp2":              AUDIO,
		"mp3":              AUDIO,
		"mp4":              VIDEO,
		"mpeg":             VIDEO,
		"mpg":              VIDEO,
		"msi":              OS_WINDOWS,
		"mts":              LANG_TYPESCRIPT,
		"mustache":         MUSTACHE,
		"nef":              IMAGE,
		"nfo":              INFO,
		"nim":              LANG_NIM,
		"nimble":           LANG_NIM,
		"nims":             LANG_NIM,
		"node":             NODEJS,
		"nu":               SHELL_CMD,
		"o":                BINARY,
		"obj":              FILE_3D,
		"odb":              DATABASE,
		"ogg":              AUDIO,
		"ogm":              VIDEO,
		"ogv":              VIDEO,
		"opml":             XML,
		"opus":             AUDIO,
		"orf":              IMAGE,
		"otf":              FONT,
		"p12":              KEY,
		"par":              COMPRESSED,
		"part":             DOWNLOAD,
		"patch":            DIFF,
		"pbm":              IMAGE,
		"pcbdoc":           EDA_PCB,
		"pcm":              AUDIO,
		"pem":              KEY,
		"pfx":              KEY,
		"pgm":              IMAGE,
		"phar":             LANG_PHP,
		"php":              LANG_PHP,
		"pl":               LANG_PERL,
		"plist":            OS_APPLE,
		"pls":              PLAYLIST,
		"plx":              LANG_PERL,
		"ply":              FILE_3D,
		"pm":               LANG_PERL,
		"png":              IMAGE,
		"pnm":              IMAGE,
		"po":               TRANSLATION,
		"pod":              LANG_PERL,
		"pot":              TRANSLATION,
		"ppm":              IMAGE,
		"pps":              SLIDE,
		"ppsx":             SLIDE,
		"ppt":              SLIDE,
		"pptx":             SLIDE,
		"prjpcb":           EDA_PCB,
		"procfile":         LANG_RUBY,
		"properties":       JSON,
		"prql":             DATABASE,
		"ps":               VECTOR,
		"ps1":              POWERSHELL,
		"psd1":             POWERSHELL,
		"psf":              FONT,
		"psm":              CAD,
		"psm1":             POWERSHELL,
		"pub":              PUBLIC_KEY,
		"pxd":              LANG_PYTHON,
		"pxm":              IMAGE,
		"py":               LANG_PYTHON,
		"pyc":              LANG_PYTHON,
		"pyd":              LANG_PYTHON,
		"pyi":              LANG_PYTHON,
		"pyo":              LANG_PYTHON,
		"pyw":              LANG_PYTHON,
		"pyx":              LANG_PYTHON,
		"qcow":             DISK_IMAGE,
		"qcow2":            DISK_IMAGE,
		"qm":               TRANSLATION,
		"qml":              QT,
		"qrc":              QT,
		"qss":              QT,
		"r":                LANG_R,
		"rake":             LANG_RUBY,
		"rakefile":         LANG_RUBY,
		"rar":              COMPRESSED,
		"raw":              IMAGE,
		"razor":            RAZOR,
		"rb":               LANG_RUBY,
		"rdata":            LANG_R,
		"rdoc":             MARKDOWN,
		"rds":              LANG_R,
		"readme":           README,
		"rkt":              LANG_SCHEME,
		"rlib":             LANG_RUST,
		"rmd":              MARKDOWN,
		"rmeta":            LANG_RUST,
		"rs":               LANG_RUST,
		"rspec":            LANG_RUBY,
		"rspec_parallel":   LANG_RUBY,
		"rspec_status":     LANG_RUBY,
		"rst":              TEXT,
		"rtf":              TEXT,
		"ru":               LANG_RUBY,
		"rubydoc":          LANG_RUBYRAILS,
		"s":                LANG_ASSEMBLY,
		"s3db":             SQLITE,
		"sass":             LANG_SASS,
		"sbt":              SUBTITLE,
		"sch":              EDA_SCH,
		"schdoc":           EDA_SCH,
		"scm":              LANG_SCHEME,
		"scss":             LANG_SASS,
		"sh":               SHELL_CMD,
		"sha1":             SHIELD_CHECK,
		"sha224":           SHIELD_CHECK,
		"sha256":           SHIELD_CHECK,
		"sha384":           SHIELD_CHECK,
		"sha512":           SHIELD_CHECK,
		"shell":            SHELL_CMD,
		"shtml":            HTML5,
		"sig":              SIGNED_FILE,
		"signature":        SIGNED_FILE,
		"skp":              CAD,
		"sl3":              SQLITE,
		"sld":              LANG_SCHEME,
		"sldasm":           CAD,
		"sldprt":           CAD,
		"slim":             LANG_RUBYRAILS,
		"slvs":             CAD,
		"so":               OS_LINUX,
		"spec.js":          TEST,
		"spec.jsx":         TEST,
		"spec.ts":          TEST,
		"spec.tsx":         TEST,
		"sql":              DATABASE,
		"sqlite":           SQLITE,
		"sqlite3":          SQLITE,
		"srt":              SUBTITLE,
		"ss":               LANG_SCHEME,
		"ssa":              SUBTITLE,
		"ste":              CAD,
		"step":             CAD,
		"stl":              FILE_3D,
		"stp":              CAD,
		"sty":              LANG_TEX,
		"styl":             LANG_STYLUS,
		"stylus":           LANG_STYLUS,
		"sub":              SUBTITLE,
		"sublime-build":    SUBLIME,
		"sublime-keymap":   SUBLIME,
		"sublime-menu":     SUBLIME,
		"sublime-options":  SUBLIME,
		"sublime-package":  SUBLIME,
		"sublime-project":  SUBLIME,
		"sublime-session":  SUBLIME,
		"sublime-settings": SUBLIME,
		"sublime-snippet":  SUBLIME,
		"sublime-theme":    SUBLIME,
		"sv":               LANG_HDL,
		"svg":              VECTOR,
		"svh":              LANG_HDL,
		"swf":              AUDIO,
		"t":                LANG_PERL,
		"tar":              COMPRESSED,
		"tar.bz2":          COMPRESSED,
		"tar.gz":           COMPRESSED,
		"tar.xz":           COMPRESSED,
		"tar.zst":          COMPRESSED,
		"taz":              COMPRESSED,
		"tbz":              COMPRESSED,
		"tbz2":             COMPRESSED,
		"tc":               DISK_IMAGE,
		"test.js":          TEST,
		"test.jsx":         TEST,
		"test.ts":          TEST,
		"test.tsx":         TEST,
		"tex":              LANG_TEX,
		"tf":               TERRAFORM,
		"tfstate":          TERRAFORM,
		"tfvars":           TERRAFORM,
		"tgz":              COMPRESSED,
		"tif":              IMAGE,
		"tiff":             IMAGE,
		"tlz":              COMPRESSED,
		"tml":              CONFIG,
		"tmux":             TMUX,
		"toml":             TOML,
		"tres":             GODOT,
		"ts":               LANG_TYPESCRIPT,
		"tscn":             GODOT,
		"tsv":              SHEET,
		"tsx":              REACT,
		"ttc":              FONT,
		"ttf":              FONT,
		"txt":              TEXT,
		"txz":              COMPRESSED,
		"typ":              TYPST,
		"tz":               COMPRESSED,
		"tzo":              COMPRESSED,
		"unity":            UNITY,
		"unity3d":          UNITY,
		"v":                LANG_V,
		"vdi":              DISK_IMAGE,
		"vhd":              DISK_IMAGE,
		"vhdl":             LANG_HDL,
		"video":            VIDEO,
		"vim":              VIM,
		"vmdk":             DISK_IMAGE,
		"vob":              VIDEO,
		"war":              LANG_JAVA,
		"wav":              AUDIO,
		"webm":             VIDEO,
		"webmanifest":      JSON,
		"webp":             IMAGE,
		"whl":              LANG_PYTHON,
		"windows":          OS_WINDOWS,
		"wma":              AUDIO,
		"wmv":              VIDEO,
		"woff":             FONT,
		"woff2":            FONT,
		"wrl":              FILE_3D,
		"wrz":              FILE_3D,
		"wv":               AUDIO,
		"x_b":              CAD,
		"x_t":              CAD,
		"xcf":              GIMP,
		"xhtml":            HTML5,
		"xlr":              SHEET,
		"xls":              SHEET,
		"xlsm":             SHEET,
		"xlsx":             SHEET,
		"xml":              XML,
		"xpm":              IMAGE,
		"xul":              XML,
		"xz":               COMPRESSED,
		"yaml":             YAML,
		"yml":              YAML,
		"z":                COMPRESSED,
		"zip":              COMPRESSED,
		"zsh":              SHELL_CMD,
		"zsh-theme":        SHELL,
		"zst":              COMPRESSED,
	}
}) // }}}
