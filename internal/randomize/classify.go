package randomize

import "github.com/parrotls/parrotls/internal/model"

// classify assigns each extension-type a model.ExtensionClass per the
// grouping rules of spec.md §4.3: server_name and pre_shared_key are always
// critical (fixed head/tail position); a fixed set of extensions that
// usually carry protocol-negotiation weight (version/key-exchange related)
// are standard; everything else defaults to optional.
var criticalExtensions = map[uint16]struct{}{
	model.ExtServerName:    {},
	model.ExtPreSharedKey: {},
}

var standardExtensions = map[uint16]struct{}{
	model.ExtSupportedVersions:   {},
	model.ExtSupportedGroups:     {},
	model.ExtKeyShare:            {},
	model.ExtSignatureAlgorithms: {},
	model.ExtPSKKeyExchangeModes: {},
	model.ExtALPN:                {},
}

func classify(ext uint16) model.ExtensionClass {
	if _, ok := criticalExtensions[ext]; ok {
		return model.ClassCritical
	}
	if _, ok := standardExtensions[ext]; ok {
		return model.ClassStandard
	}
	return model.ClassOptional
}
