package syllable

// clusterSeparator splits a word into vowel clusters: every run of
// characters outside {a,e,i,o,u,y} is a separator.
const clusterSeparator = `[^aeiouy]+`

// additionPatterns mark spellings that usually carry one more syllable than
// the vowel-cluster count shows. Mostly suffixes: "-ate", "-ise", "-tion".
var additionPatterns = []string{
	`cial`, `tia`, `cius`, `cious`, `uiet`, `gious`,
	`geous`, `priest`, `giu`, `dge`, `ion`, `iou`,
	`sia$`, `.che$`, `.ched$`, `.abe$`, `.ace$`, `.ade$`,
	`.age$`, `.aged$`, `.ake$`, `.ale$`, `.aled$`, `.ales$`,
	`.ane$`, `.ame$`, `.ape$`, `.are$`, `.ase$`, `.ashed$`,
	`.asque$`, `.ate$`, `.ave$`, `.azed$`, `.awe$`, `.aze$`,
	`.aped$`, `.athe$`, `.athes$`, `.ece$`, `.ese$`, `.esque$`,
	`.esques$`, `.eze$`, `.gue$`, `.ibe$`, `.ice$`, `.ide$`,
	`.ife$`, `.ike$`, `.ile$`, `.ime$`, `.ine$`, `.ipe$`,
	`.iped$`, `.ire$`, `.ise$`, `.ished$`, `.ite$`, `.ive$`,
	`.ize$`, `.obe$`, `.ode$`, `.oke$`, `.ole$`, `.ome$`,
	`.one$`, `.ope$`, `.oque$`, `.ore$`, `.ose$`, `.osque$`,
	`.osques$`, `.ote$`, `.ove$`, `.pped$`, `.sse$`, `.ssed$`,
	`.ste$`, `.ube$`, `.uce$`, `.ude$`, `.uge$`, `.uke$`,
	`.ule$`, `.ules$`, `.uled$`, `.ume$`, `.une$`, `.upe$`,
	`.ure$`, `.use$`, `.ushed$`, `.ute$`, `.ved$`, `.we$`,
	`.wes$`, `.wed$`, `.yse$`, `.yze$`, `.rse$`, `.red$`,
	`.rce$`, `.rde$`, `.ily$`, `.ely$`, `.des$`, `.gged$`,
	`.kes$`, `.ced$`, `.ked$`, `.med$`, `.mes$`, `.ned$`,
	`.[sz]ed$`, `.nce$`, `.rles$`, `.nes$`, `.pes$`, `.tes$`,
	`.res$`, `.ves$`, `ere$`,
}

// subtractionPatterns mark spellings where two vowel clusters are usually
// pronounced as one syllable, or where a cluster is silent.
// "^mc" appears twice and "([^aeiouy])1l$" matches a literal digit; both are
// kept as tuned.
var subtractionPatterns = []string{
	`riet`, `dien`, `ien`, `iet`, `iu`, `iest`,
	`io`, `ii`, `ily`, `.oala$`, `.iara$`, `.ying$`,
	`.earest`, `.arer`, `.aress`, `.eate$`, `.eation$`, `[aeiouym]bl$`,
	`[aeiou]{3}`, `^mc`, `ism`, `^mc`, `asm`, `([^aeiouy])1l$`,
	`[^l]lien`, `^coa[dglx].`, `[^gq]ua[^auieo]`, `dnt$`, `ia`,
}
