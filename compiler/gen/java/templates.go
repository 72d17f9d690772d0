package java

const classTemplate = `{{.Header}}

package {{.Package}};

import android.annotation.SystemApi;

import java.util.ArrayList;
import java.util.function.Function;
import java.util.List;
import java.util.Optional;
import java.util.StringJoiner;

public final class {{.Name}} {
    private {{.Name}} () {}

    static {
        System.loadLibrary("{{.Name}}_jni");
    }

` + javaParsersAndFormatters + `{{range .Visible}}
{{if .Type.IsEnum}}{{with annotation .}}    {{.}}
{{end}}    public static enum {{enumName .}} {
{{- range .EnumValues}}
        {{.}},
{{- end}}
    }

{{end}}{{if .Deprecated}}    @Deprecated
{{end}}{{with annotation .}}    {{.}}
{{end}}    public static Optional<{{javaType .}}> {{.Identifier}}() {
        return Optional.ofNullable({{parseExpr .}});
    }

    private static native String native_{{.Identifier}}_get();
{{if .Writable}}
{{if .Deprecated}}    @Deprecated
{{end}}{{with annotation .}}    {{.}}
{{end}}    public static boolean {{.Identifier}}({{javaType .}} value) {
        return native_{{.Identifier}}_set({{setExpr .}});
    }

    private static native boolean native_{{.Identifier}}_set(String str);
{{end}}{{end}}}
`

const javaParsersAndFormatters = `    private static Boolean tryParseBoolean(String str) {
        switch (str.toLowerCase()) {
            case "1":
            case "y":
            case "yes":
            case "on":
            case "true":
                return Boolean.TRUE;
            case "0":
            case "n":
            case "no":
            case "off":
            case "false":
                return Boolean.FALSE;
            default:
                return null;
        }
    }

    private static Integer tryParseInteger(String str) {
        try {
            return Integer.valueOf(str);
        } catch (NumberFormatException e) {
            return null;
        }
    }

    private static Integer tryParseUInt(String str) {
        try {
            return Integer.parseUnsignedInt(str);
        } catch (NumberFormatException e) {
            return null;
        }
    }

    private static Long tryParseLong(String str) {
        try {
            return Long.valueOf(str);
        } catch (NumberFormatException e) {
            return null;
        }
    }

    private static Long tryParseULong(String str) {
        try {
            return Long.parseUnsignedLong(str);
        } catch (NumberFormatException e) {
            return null;
        }
    }

    private static Double tryParseDouble(String str) {
        try {
            return Double.valueOf(str);
        } catch (NumberFormatException e) {
            return null;
        }
    }

    private static String tryParseString(String str) {
        return str;
    }

    private static <T extends Enum<T>> T tryParseEnum(Class<T> enumType, String str) {
        try {
            return Enum.valueOf(enumType, str);
        } catch (IllegalArgumentException e) {
            return null;
        }
    }

    private static <T> List<T> tryParseList(Function<String, T> elementParser, String str) {
        List<T> ret = new ArrayList<>();

        for (String element : str.split(",")) {
            T parsed = elementParser.apply(element);
            if (parsed == null) {
                return null;
            }
            ret.add(parsed);
        }

        return ret;
    }

    private static <T extends Enum<T>> List<T> tryParseEnumList(Class<T> enumType, String str) {
        List<T> ret = new ArrayList<>();

        for (String element : str.split(",")) {
            T parsed = tryParseEnum(enumType, element);
            if (parsed == null) {
                return null;
            }
            ret.add(parsed);
        }

        return ret;
    }

    private static <T> String formatList(List<T> list) {
        StringJoiner joiner = new StringJoiner(",");

        for (T element : list) {
            joiner.add(element.toString());
        }

        return joiner.toString();
    }

    private static String formatUIntList(List<Integer> list) {
        StringJoiner joiner = new StringJoiner(",");

        for (Integer element : list) {
            joiner.add(Integer.toUnsignedString(element));
        }

        return joiner.toString();
    }

    private static String formatULongList(List<Long> list) {
        StringJoiner joiner = new StringJoiner(",");

        for (Long element : list) {
            joiner.add(Long.toUnsignedString(element));
        }

        return joiner.toString();
    }
`

const jniTemplate = `{{.Header}}

#define LOG_TAG "{{.Module}}_jni"

#include <cstdint>
#include <iterator>
#include <string>

#include <dlfcn.h>
#include <jni.h>

namespace {

constexpr const char* kClassName = "{{.ClassPath}}";

` + jniLibraryUtils + `{{range .Visible}}jstring JNICALL {{.Identifier}}_get(JNIEnv* env, jclass) {
{{- if .LegacyName}}
    if (libc::system_property_find("{{.Key}}") == nullptr) {
        return libc::GetProp(env, "{{.LegacyName}}");
    }
{{- end}}
    return libc::GetProp(env, "{{.Key}}");
}

{{if .Writable}}jboolean JNICALL {{.Identifier}}_set(JNIEnv* env, jclass, jstring str) {
    return libc::system_property_set("{{.Key}}", ScopedUtfChars(env, str).c_str()) == 0 ? JNI_TRUE : JNI_FALSE;
}

{{end}}{{end}}const JNINativeMethod methods[] = {
{{- range .Visible}}
    {"native_{{.Identifier}}_get", "()Ljava/lang/String;", reinterpret_cast<void*>({{.Identifier}}_get)},
{{- if .Writable}}
    {"native_{{.Identifier}}_set", "(Ljava/lang/String;)Z", reinterpret_cast<void*>({{.Identifier}}_set)},
{{- end}}
{{- end}}
};

}  // namespace

jint JNI_OnLoad(JavaVM* vm, void*) {
    JNIEnv* env = nullptr;

    if (vm->GetEnv(reinterpret_cast<void**>(&env), JNI_VERSION_1_6) != JNI_OK) {
        return -1;
    }

    jclass clazz = env->FindClass(kClassName);
    if (clazz == nullptr) {
        return -1;
    }

    if (env->RegisterNatives(clazz, methods, std::size(methods)) < 0) {
        return -1;
    }

    return JNI_VERSION_1_6;
}
`

const jniLibraryUtils = `namespace libc {

struct prop_info;

const prop_info* (*system_property_find)(const char* name);

void (*system_property_read_callback)(
    const prop_info* pi,
    void (*callback)(void* cookie, const char* name, const char* value, std::uint32_t serial),
    void* cookie
);

int (*system_property_set)(const char* key, const char* value);

void* handle;

__attribute__((constructor)) void load_libc_functions() {
    handle = dlopen("libc.so", RTLD_LAZY | RTLD_NOLOAD);

    system_property_find = reinterpret_cast<decltype(system_property_find)>(dlsym(handle, "__system_property_find"));
    system_property_read_callback = reinterpret_cast<decltype(system_property_read_callback)>(dlsym(handle, "__system_property_read_callback"));
    system_property_set = reinterpret_cast<decltype(system_property_set)>(dlsym(handle, "__system_property_set"));
}

__attribute__((destructor)) void release_libc_functions() {
    dlclose(handle);
}

jstring GetProp(JNIEnv* env, const char* key) {
    auto pi = system_property_find(key);
    if (pi == nullptr) return env->NewStringUTF("");
    std::string ret;
    system_property_read_callback(pi, [](void* cookie, const char*, const char* value, std::uint32_t) {
        *static_cast<std::string*>(cookie) = value;
    }, &ret);
    return env->NewStringUTF(ret.c_str());
}

}  // namespace libc

class ScopedUtfChars {
  public:
    ScopedUtfChars(JNIEnv* env, jstring s) : env_(env), string_(s) {
        utf_chars_ = env->GetStringUTFChars(s, nullptr);
    }

    ~ScopedUtfChars() {
        if (utf_chars_) {
            env_->ReleaseStringUTFChars(string_, utf_chars_);
        }
    }

    const char* c_str() const {
        return utf_chars_;
    }

  private:
    JNIEnv* env_;
    jstring string_;
    const char* utf_chars_;
};

`
