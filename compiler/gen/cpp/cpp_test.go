package cpp

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/syssam/sysprop/compiler/gen"
	"github.com/syssam/sysprop/schema"
)

func testSet(t *testing.T) *gen.PropertySet {
	t.Helper()
	ps, err := gen.New(nil, &schema.PropertySet{
		Owner:  schema.Platform,
		Module: "android.os.PlatformProperties",
		Prefix: "ro.build",
		Props: []*schema.Property{
			{Name: "date.utc", Type: schema.Long, Scope: schema.System},
			{Name: "flavor", Type: schema.Enum, EnumValues: "eng|user|userdebug", Scope: schema.Internal, Access: schema.ReadWrite},
			{Name: "abi.list", Type: schema.StringList, Scope: schema.Public, LegacyName: "ro.product.cpu.abilist"},
			{Name: "old.flag", Type: schema.Boolean, Scope: schema.Public, Deprecated: true},
		},
	})
	require.NoError(t, err)
	return ps
}

func TestFiles(t *testing.T) {
	require := require.New(t)

	files, err := Files(testSet(t), Config{
		HeaderDir: "out/include",
		SourceDir: "out/src",
		Basename:  "PlatformProperties.sysprop",
	})
	require.NoError(err)
	require.Len(files, 2)
	require.Equal("out/include/PlatformProperties.sysprop.h", files[0].Path)
	require.Equal("out/src/PlatformProperties.sysprop.cpp", files[1].Path)
	require.False(files[0].Format)

	header := string(files[0].Content)
	require.Contains(header, "// "+gen.DefaultHeader)
	require.Contains(header, "#ifndef SYSPROPGEN_android_os_PlatformProperties_H_")
	require.Contains(header, "namespace android::os::PlatformProperties {")
	require.Contains(header, "enum class flavor_values {")
	require.Contains(header, "    userdebug,")
	require.Contains(header, "std::optional<std::int64_t> date_utc();")
	require.Contains(header, "std::optional<flavor_values> flavor();")
	require.Contains(header, "bool flavor(const flavor_values& value);")
	require.Contains(header, "std::optional<std::vector<std::string>> abi_list();")
	require.Contains(header, "[[deprecated]] std::optional<bool> old_flag();")
	// Readonly props get no setter declaration.
	require.NotContains(header, "bool date_utc(")

	source := string(files[1].Content)
	require.Contains(source, "#include <PlatformProperties.sysprop.h>")
	require.Contains(source, `{"eng", flavor_values::eng},`)
	require.Contains(source, "std::optional<flavor_values> DoParse(const char* str)")
	require.Contains(source, "std::string FormatValue(flavor_values value)")
	require.Contains(source, `return libc::GetProp<std::int64_t>("ro.build.date.utc");`)
	require.Contains(source, `libc::system_property_set("ro.build.flavor", FormatValue(value).c_str())`)
	// Legacy fallback reads the old key when the primary one is unset.
	require.Contains(source, `ret = libc::GetProp<std::vector<std::string>>("ro.product.cpu.abilist");`)
	require.Contains(source, `dlopen("libc.so", RTLD_LAZY | RTLD_NOLOAD)`)
}

func TestFilesIncludeName(t *testing.T) {
	require := require.New(t)

	files, err := Files(testSet(t), Config{
		HeaderDir:   "include",
		SourceDir:   "src",
		IncludeName: "properties/platform.h",
		Basename:    "platform.sysprop",
	})
	require.NoError(err)
	require.Contains(string(files[1].Content), "#include <properties/platform.h>")
}

func TestScopeFiltersProps(t *testing.T) {
	require := require.New(t)

	cfg, err := gen.NewConfig(gen.WithScope(schema.Internal))
	require.NoError(err)
	ps, err := gen.New(cfg, &schema.PropertySet{
		Owner:  schema.Vendor,
		Module: "com.test.Scoped",
		Props: []*schema.Property{
			{Name: "visible", Type: schema.Integer, Scope: schema.Internal},
			{Name: "hidden", Type: schema.Integer, Scope: schema.System},
		},
	})
	require.NoError(err)

	files, err := Files(ps, Config{Basename: "Scoped.sysprop"})
	require.NoError(err)
	header := string(files[0].Content)
	require.Contains(header, "visible();")
	require.NotContains(header, "hidden();")
}
