package cpp

const headerTemplate = `{{.Header}}

#ifndef {{.Guard}}
#define {{.Guard}}

#include <cstdint>
#include <optional>
#include <string>
#include <vector>

namespace {{.Namespace "::"}} {

{{range .Visible}}{{if .Type.IsEnum}}enum class {{enumName .}} {
{{- range .EnumValues}}
    {{.}},
{{- end}}
};

{{end}}{{if .Deprecated}}[[deprecated]] {{end}}std::optional<{{cppType .}}> {{.Identifier}}();
{{if .Writable}}{{if .Deprecated}}[[deprecated]] {{end}}bool {{.Identifier}}(const {{cppType .}}& value);
{{end}}
{{end}}}  // namespace {{.Namespace "::"}}

#endif  // {{.Guard}}
`

const sourceTemplate = `{{.Header}}

#include <{{.IncludeName}}>

#include <cstdio>
#include <cstdlib>
#include <cstring>
#include <iterator>
#include <type_traits>
#include <utility>

#include <dlfcn.h>
#include <strings.h>

namespace {

using namespace {{.Namespace "::"}};

template <typename T> std::optional<T> DoParse(const char* str);

{{range .Visible}}{{if .Type.IsEnum}}constexpr const std::pair<const char*, {{enumName .}}> {{.Identifier}}_list[] = {
{{- $enum := enumName .}}
{{- range .EnumValues}}
    {"{{.}}", {{$enum}}::{{.}}},
{{- end}}
};

template <>
std::optional<{{enumName .}}> DoParse(const char* str) {
    for (auto [name, val] : {{.Identifier}}_list) {
        if (strcmp(str, name) == 0) {
            return val;
        }
    }
    return std::nullopt;
}

{{if .Writable}}std::string FormatValue({{enumName .}} value) {
    for (auto [name, val] : {{.Identifier}}_list) {
        if (val == value) {
            return name;
        }
    }
    return "";
}

{{end}}{{end}}{{end}}` + cppParsersAndFormatters + cppLibcUtil + `}  // namespace

namespace {{.Namespace "::"}} {

{{range .Visible}}std::optional<{{cppType .}}> {{.Identifier}}() {
{{- if .LegacyName}}
    auto ret = libc::GetProp<{{cppType .}}>("{{.Key}}");
    if (!ret) {
        ret = libc::GetProp<{{cppType .}}>("{{.LegacyName}}");
    }
    return ret;
{{- else}}
    return libc::GetProp<{{cppType .}}>("{{.Key}}");
{{- end}}
}

{{if .Writable}}bool {{.Identifier}}(const {{cppType .}}& value) {
    return libc::system_property_set("{{.Key}}", {{if eq (cppType .) "std::string"}}value.c_str(){{else}}FormatValue(value).c_str(){{end}}) == 0;
}

{{end}}{{end}}}  // namespace {{.Namespace "::"}}
`

const cppParsersAndFormatters = `template <typename T> constexpr bool is_vector = false;

template <typename T> constexpr bool is_vector<std::vector<T>> = true;

template <> [[maybe_unused]] std::optional<bool> DoParse(const char* str) {
    static constexpr const char* kYes[] = {"1", "true"};
    static constexpr const char* kNo[] = {"0", "false"};

    for (const char* yes : kYes) {
        if (strcasecmp(yes, str) == 0) return std::make_optional(true);
    }

    for (const char* no : kNo) {
        if (strcasecmp(no, str) == 0) return std::make_optional(false);
    }

    return std::nullopt;
}

template <> [[maybe_unused]] std::optional<std::int32_t> DoParse(const char* str) {
    char* end = nullptr;
    long ret = std::strtol(str, &end, 10);
    if (str == end || *end != '\0') return std::nullopt;
    return std::make_optional(static_cast<std::int32_t>(ret));
}

template <> [[maybe_unused]] std::optional<std::uint32_t> DoParse(const char* str) {
    char* end = nullptr;
    unsigned long ret = std::strtoul(str, &end, 10);
    if (str == end || *end != '\0') return std::nullopt;
    return std::make_optional(static_cast<std::uint32_t>(ret));
}

template <> [[maybe_unused]] std::optional<std::int64_t> DoParse(const char* str) {
    char* end = nullptr;
    long long ret = std::strtoll(str, &end, 10);
    if (str == end || *end != '\0') return std::nullopt;
    return std::make_optional(static_cast<std::int64_t>(ret));
}

template <> [[maybe_unused]] std::optional<std::uint64_t> DoParse(const char* str) {
    char* end = nullptr;
    unsigned long long ret = std::strtoull(str, &end, 10);
    if (str == end || *end != '\0') return std::nullopt;
    return std::make_optional(static_cast<std::uint64_t>(ret));
}

template <> [[maybe_unused]] std::optional<double> DoParse(const char* str) {
    char* end = nullptr;
    double ret = std::strtod(str, &end);
    if (str == end || *end != '\0') return std::nullopt;
    return std::make_optional(ret);
}

template <> [[maybe_unused]] std::optional<std::string> DoParse(const char* str) {
    return std::make_optional(str);
}

template <typename Vec> [[maybe_unused]] std::optional<Vec> DoParseList(const char* str) {
    Vec ret;
    const char* p = str;
    std::string element;
    for (;; ++p) {
        if (*p == ',' || *p == '\0') {
            auto parsed = DoParse<typename Vec::value_type>(element.c_str());
            if (!parsed) {
                return std::nullopt;
            }
            ret.emplace_back(std::move(*parsed));
            element.clear();
            if (*p == '\0') break;
        } else {
            element.push_back(*p);
        }
    }
    return std::make_optional(std::move(ret));
}

template <typename T> inline std::optional<T> TryParse(const char* str) {
    if constexpr(is_vector<T>) {
        return DoParseList<T>(str);
    } else {
        return DoParse<T>(str);
    }
}

[[maybe_unused]] std::string FormatValue(std::int32_t value) {
    return std::to_string(value);
}

[[maybe_unused]] std::string FormatValue(std::uint32_t value) {
    return std::to_string(value);
}

[[maybe_unused]] std::string FormatValue(std::int64_t value) {
    return std::to_string(value);
}

[[maybe_unused]] std::string FormatValue(std::uint64_t value) {
    return std::to_string(value);
}

[[maybe_unused]] std::string FormatValue(double value) {
    char buf[64];
    std::snprintf(buf, sizeof(buf), "%.17g", value);
    return buf;
}

[[maybe_unused]] std::string FormatValue(bool value) {
    return value ? "true" : "false";
}

template <typename T>
[[maybe_unused]] std::string FormatValue(const std::vector<T>& value) {
    if (value.empty()) return "";

    std::string ret;

    for (auto&& element : value) {
        if (!ret.empty()) ret.push_back(',');
        if constexpr(std::is_same_v<T, std::string>) {
            ret += element;
        } else {
            ret += FormatValue(element);
        }
    }

    return ret;
}

`

const cppLibcUtil = `namespace libc {

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

template <typename T>
std::optional<T> GetProp(const char* key) {
    auto pi = system_property_find(key);
    if (pi == nullptr) return std::nullopt;
    std::optional<T> ret;
    system_property_read_callback(pi, [](void* cookie, const char*, const char* value, std::uint32_t) {
        *static_cast<std::optional<T>*>(cookie) = TryParse<T>(value);
    }, &ret);
    return ret;
}

}  // namespace libc

`
