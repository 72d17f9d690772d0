package rust

const moduleTemplate = `//! Autogenerated system property accessors.
//!
//! This is an autogenerated module. The module contains methods for typed access to
//! system properties.

{{.Header}}

use std::fmt;
use rustutils::system_properties::{self, error::SysPropError, parsers_formatters};

{{range .Visible}}{{$p := .}}/// The property name of the "{{.Identifier}}" API.
pub const {{constName .}}: &str = "{{.Key}}";

{{if .Type.IsEnum}}#[allow(missing_docs)]
#[derive(Copy, Clone, Debug, Eq, PartialEq, PartialOrd, Hash, Ord)]
pub enum {{enumType .}} {
{{- range .EnumValues}}
    {{variant .}},
{{- end}}
}

impl std::str::FromStr for {{enumType .}} {
    type Err = String;

    fn from_str(s: &str) -> std::result::Result<Self, Self::Err> {
        match s {
{{- range .EnumValues}}
            "{{.}}" => Ok({{enumType $p}}::{{variant .}}),
{{- end}}
            _ => Err(format!("'{}' cannot be parsed for {{enumType .}}", s)),
        }
    }
}

impl fmt::Display for {{enumType .}} {
    fn fmt(&self, f: &mut fmt::Formatter<'_>) -> fmt::Result {
        match self {
{{- range .EnumValues}}
            {{enumType $p}}::{{variant .}} => write!(f, "{{.}}"),
{{- end}}
        }
    }
}

{{end}}/// Returns the value of the property '{{.Key}}' if set.
{{if .Deprecated}}#[deprecated]
{{end}}pub fn {{rustID .}}() -> std::result::Result<Option<{{returnType .}}>, SysPropError> {
    let result = match system_properties::read({{constName .}}) {
        Err(e) => Err(SysPropError::FetchError(e)),
        Ok(Some(val)) => {{parser .}}(val.as_str()).map_err(SysPropError::ParseError).map(Some),
        Ok(None) => Ok(None),
    };
{{- if .LegacyName}}
    if !matches!(result, Ok(None)) {
        return result;
    }
    match system_properties::read("{{.LegacyName}}") {
        Err(e) => Err(SysPropError::FetchError(e)),
        Ok(Some(val)) => {{parser .}}(val.as_str()).map_err(SysPropError::ParseError).map(Some),
        Ok(None) => Ok(None),
    }
{{- else}}
    result
{{- end}}
}

{{if .Writable}}/// Sets the value of the property '{{.Key}}', returns 'Ok' if successful.
{{if .Deprecated}}#[deprecated]
{{end}}pub fn set_{{.Identifier}}(v: {{acceptType .}}) -> std::result::Result<(), SysPropError> {
{{- if setDirect .}}
    system_properties::write({{constName .}}, v).map_err(SysPropError::SetError)
{{- else}}
    let value = {{formatter .}}({{if .Type.IsList}}v{{else}}&v{{end}});
    system_properties::write({{constName .}}, value.as_str()).map_err(SysPropError::SetError)
{{- end}}
}

{{end}}{{end}}`
