package java

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
			{Name: "mask", Type: schema.UInt, Scope: schema.Public, Access: schema.ReadWrite},
			{Name: "abi.list", Type: schema.StringList, Scope: schema.Public, LegacyName: "ro.product.cpu.abilist"},
		},
	})
	require.NoError(t, err)
	return ps
}

func TestFiles(t *testing.T) {
	require := require.New(t)

	files, err := Files(testSet(t), Config{JavaDir: "out/java", JNIDir: "out/jni"})
	require.NoError(err)
	require.Len(files, 2)
	require.Equal("out/java/android/os/PlatformProperties.java", files[0].Path)
	require.Equal("out/jni/PlatformProperties_jni.cpp", files[1].Path)

	class := string(files[0].Content)
	require.Contains(class, "package android.os;")
	require.Contains(class, "public final class PlatformProperties {")
	require.Contains(class, `System.loadLibrary("PlatformProperties_jni");`)
	require.Contains(class, "public static enum flavor_values {")
	require.Contains(class, "public static Optional<Long> date_utc() {")
	require.Contains(class, "return Optional.ofNullable(tryParseLong(native_date_utc_get()));")
	require.Contains(class, "private static native String native_date_utc_get();")
	require.Contains(class, "tryParseEnum(flavor_values.class, native_flavor_get())")
	require.Contains(class, "tryParseList(v -> tryParseString(v), native_abi_list_get())")
	// Unsigned values parse and format through the unsigned helpers.
	require.Contains(class, "tryParseUInt(native_mask_get())")
	require.Contains(class, "return native_mask_set(Integer.toUnsignedString(value));")
	// Scope annotations follow the property, not the set.
	require.Contains(class, "@SystemApi")
	require.Contains(class, "/** @hide */")
	// Readonly props get no setter.
	require.NotContains(class, "native_date_utc_set")
	require.NotContains(class, "native_abi_list_set")

	jni := string(files[1].Content)
	require.Contains(jni, `#define LOG_TAG "android.os.PlatformProperties_jni"`)
	require.Contains(jni, `constexpr const char* kClassName = "android/os/PlatformProperties";`)
	require.Contains(jni, "jstring JNICALL date_utc_get(JNIEnv* env, jclass) {")
	require.Contains(jni, `return libc::GetProp(env, "ro.build.date.utc");`)
	require.Contains(jni, "jboolean JNICALL flavor_set(JNIEnv* env, jclass, jstring str) {")
	require.Contains(jni, `{"native_date_utc_get", "()Ljava/lang/String;", reinterpret_cast<void*>(date_utc_get)},`)
	require.Contains(jni, `{"native_flavor_set", "(Ljava/lang/String;)Z", reinterpret_cast<void*>(flavor_set)},`)
	require.Contains(jni, "jint JNI_OnLoad(JavaVM* vm, void*) {")
	// Legacy fallback reads the old key when the primary one is unset.
	require.Contains(jni, `if (libc::system_property_find("ro.build.abi.list") == nullptr) {`)
	require.Contains(jni, `return libc::GetProp(env, "ro.product.cpu.abilist");`)
}

func TestAnnotationPerScope(t *testing.T) {
	tests := []struct {
		scope schema.Scope
		want  string
	}{
		{schema.System, "@SystemApi"},
		{schema.Internal, "/** @hide */"},
		{schema.Public, ""},
	}

	for _, tt := range tests {
		t.Run(tt.scope.String(), func(t *testing.T) {
			got := annotation(&gen.Property{Scope: tt.scope})
			require.Equal(t, tt.want, got)
		})
	}
}
