package content

import "github.com/example/kanabot/pkg/models"

// hiraganaCatalog is the basic 46-character gojuon set with usage examples.
var hiraganaCatalog = []models.Character{
	// Vowels
	{Script: models.ScriptHiragana, Glyph: "あ", Romaji: "a", Category: "vowels", Difficulty: 1, Examples: "あさ (asa) - morning\nあめ (ame) - rain\nあき (aki) - autumn"},
	{Script: models.ScriptHiragana, Glyph: "い", Romaji: "i", Category: "vowels", Difficulty: 1, Examples: "いえ (ie) - house\nいぬ (inu) - dog\nいろ (iro) - color"},
	{Script: models.ScriptHiragana, Glyph: "う", Romaji: "u", Category: "vowels", Difficulty: 1, Examples: "うみ (umi) - sea\nうま (uma) - horse\nうた (uta) - song"},
	{Script: models.ScriptHiragana, Glyph: "え", Romaji: "e", Category: "vowels", Difficulty: 1, Examples: "えき (eki) - station\nえん (en) - yen"},
	{Script: models.ScriptHiragana, Glyph: "お", Romaji: "o", Category: "vowels", Difficulty: 1, Examples: "おちゃ (ocha) - tea\nおんがく (ongaku) - music\nおかね (okane) - money"},

	// K-sounds
	{Script: models.ScriptHiragana, Glyph: "か", Romaji: "ka", Category: "k-sounds", Difficulty: 1, Examples: "かみ (kami) - paper\nかぞく (kazoku) - family\nかわ (kawa) - river"},
	{Script: models.ScriptHiragana, Glyph: "き", Romaji: "ki", Category: "k-sounds", Difficulty: 1, Examples: "き (ki) - tree\nきいろ (kiiro) - yellow\nきのう (kinou) - yesterday"},
	{Script: models.ScriptHiragana, Glyph: "く", Romaji: "ku", Category: "k-sounds", Difficulty: 1, Examples: "くるま (kuruma) - car\nくも (kumo) - cloud\nくつ (kutsu) - shoes"},
	{Script: models.ScriptHiragana, Glyph: "け", Romaji: "ke", Category: "k-sounds", Difficulty: 1, Examples: "けさ (kesa) - this morning\nけん (ken) - prefecture"},
	{Script: models.ScriptHiragana, Glyph: "こ", Romaji: "ko", Category: "k-sounds", Difficulty: 1, Examples: "ここ (koko) - here\nこども (kodomo) - child\nこえ (koe) - voice"},

	// S-sounds
	{Script: models.ScriptHiragana, Glyph: "さ", Romaji: "sa", Category: "s-sounds", Difficulty: 1, Examples: "さかな (sakana) - fish\nさくら (sakura) - cherry blossom\nさとう (satou) - sugar"},
	{Script: models.ScriptHiragana, Glyph: "し", Romaji: "shi", Category: "s-sounds", Difficulty: 2, Examples: "しお (shio) - salt\nしごと (shigoto) - work\nしんぶん (shinbun) - newspaper"},
	{Script: models.ScriptHiragana, Glyph: "す", Romaji: "su", Category: "s-sounds", Difficulty: 1, Examples: "すし (sushi) - sushi\nすいか (suika) - watermelon"},
	{Script: models.ScriptHiragana, Glyph: "せ", Romaji: "se", Category: "s-sounds", Difficulty: 1, Examples: "せんせい (sensei) - teacher\nせかい (sekai) - world\nせき (seki) - seat"},
	{Script: models.ScriptHiragana, Glyph: "そ", Romaji: "so", Category: "s-sounds", Difficulty: 1, Examples: "そら (sora) - sky\nそば (soba) - buckwheat noodles\nそと (soto) - outside"},

	// T-sounds
	{Script: models.ScriptHiragana, Glyph: "た", Romaji: "ta", Category: "t-sounds", Difficulty: 1, Examples: "たべもの (tabemono) - food\nたまご (tamago) - egg\nたかい (takai) - expensive/tall"},
	{Script: models.ScriptHiragana, Glyph: "ち", Romaji: "chi", Category: "t-sounds", Difficulty: 2, Examples: "ちず (chizu) - map\nちいさい (chiisai) - small\nちち (chichi) - father"},
	{Script: models.ScriptHiragana, Glyph: "つ", Romaji: "tsu", Category: "t-sounds", Difficulty: 4, Examples: "つき (tsuki) - moon\nつくえ (tsukue) - desk\nつめたい (tsumetai) - cold"},
	{Script: models.ScriptHiragana, Glyph: "て", Romaji: "te", Category: "t-sounds", Difficulty: 1, Examples: "て (te) - hand\nてがみ (tegami) - letter\nてんき (tenki) - weather"},
	{Script: models.ScriptHiragana, Glyph: "と", Romaji: "to", Category: "t-sounds", Difficulty: 1, Examples: "とけい (tokei) - clock\nともだち (tomodachi) - friend\nとり (tori) - bird"},

	// N-sounds
	{Script: models.ScriptHiragana, Glyph: "な", Romaji: "na", Category: "n-sounds", Difficulty: 1, Examples: "なまえ (namae) - name\nなつ (natsu) - summer\nなに (nani) - what"},
	{Script: models.ScriptHiragana, Glyph: "に", Romaji: "ni", Category: "n-sounds", Difficulty: 1, Examples: "にほん (nihon) - Japan\nにく (niku) - meat\nにわ (niwa) - garden"},
	{Script: models.ScriptHiragana, Glyph: "ぬ", Romaji: "nu", Category: "n-sounds", Difficulty: 2, Examples: "ぬの (nuno) - cloth\nぬるい (nurui) - lukewarm"},
	{Script: models.ScriptHiragana, Glyph: "ね", Romaji: "ne", Category: "n-sounds", Difficulty: 1, Examples: "ねこ (neko) - cat\nねる (neru) - to sleep\nねだん (nedan) - price"},
	{Script: models.ScriptHiragana, Glyph: "の", Romaji: "no", Category: "n-sounds", Difficulty: 1, Examples: "のむ (nomu) - to drink\nのり (nori) - seaweed\nのど (nodo) - throat"},

	// H-sounds
	{Script: models.ScriptHiragana, Glyph: "は", Romaji: "ha", Category: "h-sounds", Difficulty: 1, Examples: "はな (hana) - flower/nose\nはし (hashi) - bridge/chopsticks\nはる (haru) - spring"},
	{Script: models.ScriptHiragana, Glyph: "ひ", Romaji: "hi", Category: "h-sounds", Difficulty: 1, Examples: "ひ (hi) - fire/day\nひと (hito) - person\nひだり (hidari) - left"},
	{Script: models.ScriptHiragana, Glyph: "ふ", Romaji: "fu", Category: "h-sounds", Difficulty: 2, Examples: "ふゆ (fuyu) - winter\nふね (fune) - ship\nふるい (furui) - old"},
	{Script: models.ScriptHiragana, Glyph: "へ", Romaji: "he", Category: "h-sounds", Difficulty: 1, Examples: "へや (heya) - room\nへび (hebi) - snake\nへん (hen) - strange"},
	{Script: models.ScriptHiragana, Glyph: "ほ", Romaji: "ho", Category: "h-sounds", Difficulty: 1, Examples: "ほん (hon) - book\nほし (hoshi) - star\nほそい (hosoi) - thin"},

	// M-sounds
	{Script: models.ScriptHiragana, Glyph: "ま", Romaji: "ma", Category: "m-sounds", Difficulty: 1, Examples: "まち (machi) - town\nまど (mado) - window\nまいにち (mainichi) - every day"},
	{Script: models.ScriptHiragana, Glyph: "み", Romaji: "mi", Category: "m-sounds", Difficulty: 1, Examples: "みず (mizu) - water\nみち (michi) - road\nみぎ (migi) - right"},
	{Script: models.ScriptHiragana, Glyph: "む", Romaji: "mu", Category: "m-sounds", Difficulty: 1, Examples: "むし (mushi) - insect\nむずかしい (muzukashii) - difficult"},
	{Script: models.ScriptHiragana, Glyph: "め", Romaji: "me", Category: "m-sounds", Difficulty: 1, Examples: "め (me) - eye\nめがね (megane) - glasses\nめし (meshi) - meal"},
	{Script: models.ScriptHiragana, Glyph: "も", Romaji: "mo", Category: "m-sounds", Difficulty: 1, Examples: "もの (mono) - thing\nもり (mori) - forest\nもう (mou) - already"},

	// Y-sounds
	{Script: models.ScriptHiragana, Glyph: "や", Romaji: "ya", Category: "y-sounds", Difficulty: 1, Examples: "やま (yama) - mountain\nやすい (yasui) - cheap\nやさい (yasai) - vegetables"},
	{Script: models.ScriptHiragana, Glyph: "ゆ", Romaji: "yu", Category: "y-sounds", Difficulty: 1, Examples: "ゆき (yuki) - snow\nゆめ (yume) - dream\nゆっくり (yukkuri) - slowly"},
	{Script: models.ScriptHiragana, Glyph: "よ", Romaji: "yo", Category: "y-sounds", Difficulty: 1, Examples: "よる (yoru) - night\nよい (yoi) - good\nよん (yon) - four"},

	// R-sounds
	{Script: models.ScriptHiragana, Glyph: "ら", Romaji: "ra", Category: "r-sounds", Difficulty: 3, Examples: "らいねん (rainen) - next year\nらくだ (rakuda) - camel"},
	{Script: models.ScriptHiragana, Glyph: "り", Romaji: "ri", Category: "r-sounds", Difficulty: 3, Examples: "りんご (ringo) - apple\nりょうり (ryouri) - cooking\nりゆう (riyuu) - reason"},
	{Script: models.ScriptHiragana, Glyph: "る", Romaji: "ru", Category: "r-sounds", Difficulty: 3, Examples: "るす (rusu) - absence\nるいじ (ruiji) - similar"},
	{Script: models.ScriptHiragana, Glyph: "れ", Romaji: "re", Category: "r-sounds", Difficulty: 3, Examples: "れいぞうこ (reizouko) - refrigerator\nれんしゅう (renshuu) - practice\nれきし (rekishi) - history"},
	{Script: models.ScriptHiragana, Glyph: "ろ", Romaji: "ro", Category: "r-sounds", Difficulty: 3, Examples: "ろく (roku) - six\nろうそく (rousoku) - candle"},

	// W-sounds and the standalone n
	{Script: models.ScriptHiragana, Glyph: "わ", Romaji: "wa", Category: "w-sounds", Difficulty: 1, Examples: "わたし (watashi) - I\nわかる (wakaru) - to understand\nわるい (warui) - bad"},
	{Script: models.ScriptHiragana, Glyph: "を", Romaji: "wo", Category: "w-sounds", Difficulty: 2, Examples: "を (wo) - object particle"},
	{Script: models.ScriptHiragana, Glyph: "ん", Romaji: "n", Category: "special", Difficulty: 2, Examples: "ほん (hon) - book\nせんせい (sensei) - teacher"},
}
