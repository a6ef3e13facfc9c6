package nif

import "github.com/francescomambrini/Spacy2NIF/rdf"

// Namespaces of the vocabularies used in the exported graph.
const (
	// NamespaceNIF is the NIF 2.1 core ontology namespace.
	NamespaceNIF = "http://persistence.uni-leipzig.org/nlp2rdf/ontologies/nif-core#"
	// NamespaceITSRDF is the ITS 2.0 RDF namespace.
	NamespaceITSRDF = "http://www.w3.org/2005/11/its/rdf#"
	// NamespaceCoNLL is the CoNLL-2009 shared-task namespace used for
	// annotations the NIF core ontology has no term for.
	NamespaceCoNLL = "http://ufal.mff.cuni.cz/conll2009-st/task-description.html#"
)

// Classes.
var (
	nifWord             = rdf.IRI{Value: NamespaceNIF + "Word"}
	nifSentence         = rdf.IRI{Value: NamespaceNIF + "Sentence"}
	nifSpan             = rdf.IRI{Value: NamespaceNIF + "Span"}
	nifEntityOccurrence = rdf.IRI{Value: NamespaceNIF + "EntityOccurrence"}
)

// Properties.
var (
	nifBeginIndex         = rdf.IRI{Value: NamespaceNIF + "beginIndex"}
	nifEndIndex           = rdf.IRI{Value: NamespaceNIF + "endIndex"}
	nifIsString           = rdf.IRI{Value: NamespaceNIF + "isString"}
	nifAnchorOf           = rdf.IRI{Value: NamespaceNIF + "anchorOf"}
	nifReferenceContext   = rdf.IRI{Value: NamespaceNIF + "referenceContext"}
	nifNextWord           = rdf.IRI{Value: NamespaceNIF + "nextWord"}
	nifNextSentence       = rdf.IRI{Value: NamespaceNIF + "nextSentence"}
	nifFirstWord          = rdf.IRI{Value: NamespaceNIF + "firstWord"}
	nifLastWord           = rdf.IRI{Value: NamespaceNIF + "lastWord"}
	nifSentenceOf         = rdf.IRI{Value: NamespaceNIF + "sentence"}
	nifLemma              = rdf.IRI{Value: NamespaceNIF + "lemma"}
	nifPosTag             = rdf.IRI{Value: NamespaceNIF + "posTag"}
	nifDependencyRelation = rdf.IRI{Value: NamespaceNIF + "dependencyRelationType"}
	nifSubString          = rdf.IRI{Value: NamespaceNIF + "subString"}
	nifLiteralAnnotation  = rdf.IRI{Value: NamespaceNIF + "literalAnnotation"}
	conllFeats            = rdf.IRI{Value: NamespaceCoNLL + "FEATS"}
	conllHead             = rdf.IRI{Value: NamespaceCoNLL + "HEAD"}
)
