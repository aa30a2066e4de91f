// Package lexicon implements the VADER rule-based sentiment analyzer and the provisioning of its
// word list.
//
// Analyzer scores text from a word-to-valence map, adjusting for boosters, capitalisation,
// negation, idioms, the contrastive "but" and punctuation emphasis. Provisioner downloads the
// vader_lexicon.txt word list once and caches it on disk.
package lexicon
