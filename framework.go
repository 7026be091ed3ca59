package webml

// Framework identifies the site generator that produced a page.
// Profiles keyed by framework apply to any host built with it.
type Framework string

// Framework constants.
const (
	FrameworkUnknown    Framework = ""
	FrameworkDocusaurus Framework = "docusaurus"
	FrameworkMkDocs     Framework = "mkdocs"
	FrameworkSphinx     Framework = "sphinx"
	FrameworkVuePress   Framework = "vuepress"
	FrameworkVitePress  Framework = "vitepress"
	FrameworkGitBook    Framework = "gitbook"
	FrameworkNextra     Framework = "nextra"
)

// frameworks lists every known framework.
var frameworks = []Framework{
	FrameworkDocusaurus,
	FrameworkMkDocs,
	FrameworkSphinx,
	FrameworkVuePress,
	FrameworkVitePress,
	FrameworkGitBook,
	FrameworkNextra,
}

// ParseFramework validates a framework name. The empty string parses as
// FrameworkUnknown.
func ParseFramework(s string) (Framework, error) {
	if s == "" {
		return FrameworkUnknown, nil
	}
	for _, f := range frameworks {
		if string(f) == s {
			return f, nil
		}
	}
	return FrameworkUnknown, Errorf(EINVALID, "unknown framework %q", s)
}
