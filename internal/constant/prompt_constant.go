package constant

// Prompt templates for the structured generators. Placeholders use the
// {name} form and are filled by generator.RenderTemplate.

const RoadmapPromptTemplate = `Siz, konuları zihin haritası formatında sunan bir uzmansınız.
Göreviniz, "{field}" konusu için ayrıntılı bir öğrenme yol haritası oluşturmaktır.
Geri bildirimi Türkçe yaz.
Çıktıyı, YALNIZCA aşağıdaki yapıya sahip temiz bir JSON formatında geri göndermelisiniz:
{
  "diagramTitle": "{field}",
  "mainStages": [
    {
      "stageName": "Ana Aşama Başlığı",
      "subNodes": [
        {
          "centralNodeTitle": "Alt Aşama Başlığı",
          "leftItems": [ { "id": "id1", "name": "Soldaki Madde 1" } ],
          "rightItems": [ { "id": "id2", "name": "Sağdaki Madde 1" } ]
        }
      ]
    }
  ]
}
`

const QuizPromptTemplate = `Sen, çeşitli teknik konularda uzman bir eğitmen ve sınav hazırlama uzmanısın.
Görevin, aşağıda belirtilen konulara göre bir quiz oluşturmaktır.

Ana odaklanılacak konular (Sorular bu konulardan türetilmelidir):
{rightItems}

İlişkili veya daha az öncelikli konular (Seçenekleri zenginleştirmek için kullanılabilir):
{leftItems}

Quiz aşağıdaki kurallara HARFİYEN uymalıdır:
1.  Quiz, başlangıçtan uzman seviyesine doğru zorlaşan tam 5 seviyeden oluşmalıdır.
2.  Her bir seviye, tam olarak 5 adet çoktan seçmeli soru içermelidir.
3.  Her sorunun 4 seçeneği olmalıdır.
4.  Her sorunun tek bir doğru cevabı belirtilmelidir.

Çıktıyı MUTLAKA ve SADECE aşağıdaki JSON formatında döndür:

{
  "quizTitle": "Konu Değerlendirme Sınavı",
  "levels": [
    {
      "level": 1,
      "levelTitle": "Temel Kavramlar ve Tanımlar",
      "questions": [
        {
          "question": "1. Seviye, 1. Soru metni burada yer alacak.",
          "options": ["Seçenek A", "Seçenek B", "Seçenek C", "Seçenek D"],
          "answer": "Doğru olan seçenek metni. Örneğin: Seçenek A"
        }
      ]
    }
  ]
}
`

const SuggestionPromptTemplate = `Sen, bir yazılımcının portfolyosunu zenginleştirmesine yardımcı olan deneyimli bir teknoloji mentörüsün.

Görevin, aşağıda virgülle ayrılmış teknoloji başlıklarını ({titles}) analiz ederek, bu teknolojileri kullanan ve bir geliştiricinin 1-2 ay içinde tamamlayabileceği, yaratıcı ve gerçek dünya problemlerini çözen proje fikirleri üretmektir.

Cevabın SADECE geçerli bir JSON object olmalıdır ve aşağıdaki yapıya uymalıdır:

{
  "project_levels": [
    {
      "level_name": "Başlangıç",
      "projects": [
        { "title": "Proje Başlığı", "description": "Projenin ne olduğunu, hangi problemi çözdüğünü ve neden portfolyo için değerli olduğunu açıklayan 3-4 cümlelik bir metin." }
      ]
    }
  ]
}
`

const EvaluationPromptTemplate = `Sen, yazılım geliştirici adaylarının projelerini inceleyen, deneyimli, yapıcı ve empatik bir teknik ekip liderisin.

Bir geliştirici adayına aşağıdaki proje önerisi verilmiştir. Aday, bu öneriye dayanarak bir proje geliştirmiş ve kodlarını aşağıda sunmuştur.
Görevin, adayın kodunu, kendisine verilen orijinal proje önerisini ne kadar başarılı bir şekilde hayata geçirdiğini değerlendirmektir.
Geri bildirimi Türkçe yaz.

--- ORİJİNAL PROJE ÖNERİSİ ---
Başlık: {suggestion_title}
Açıklama: {suggestion_description}
--- ORİJİNAL PROJE ÖNERİSİ SONU ---

--- ADAYIN KODU ---
{project_code}
--- ADAYIN KODU SONU ---

LÜTFEN DEĞERLENDİRMENİ AŞAĞIDAKİ JSON FORMATINDA, TÜRKÇE OLARAK SUN. SADECE JSON ÇIKTISI VER, BAŞKA HİÇBİR AÇIKLAMA EKLEME:

{
  "projeAmaci": "Projenin, verilen öneri doğrultusundaki amacını bir veya iki cümleyle özetle.",
  "genelDegerlendirme": "Kodun genel bir özeti ve öneriye uyumu.",
  "olumluYonler": ["..."],
  "gelistirilebilecekYonler": ["..."],
  "ogrenmeTavsiyesi": "Kullanıcının odaklanması gereken konular."
}
`

const CVFeedbackPromptTemplate = `Geri bildirimi Türkçe yaz.
You are an ATS (Applicant Tracking System) expert and CV reviewer.
Analyze this CV specifically for ATS compatibility and optimization.
Focus on: keyword optimization, format simplicity, readability by automated systems.

Key ATS guidelines to check:
1. Simple formatting (avoid tables, complex layouts)
2. Standard fonts and simple bullet points
3. Clear section headers
4. Keyword optimization without spam
5. Concise summary section instead of long "About Me"

{issues_context}

CV Content:
{cv_text}

Provide ATS-focused improvement suggestions in a clear paragraph:
`

const RoadmapChatPromptTemplate = `Kullanıcı roadmap konularından birine dair soru soruyor.
- Kullanıcının sorusu: "{question}"
- İlgili roadmap konusu: "{topic}"
- Roadmap içeriği: {roadmap_content}

Lütfen bu konu hakkında açık, anlaşılır ve öğretici bir cevap üret.
Gerçek hayattan örneklerle sorulan soruya cevap ver.
Markdown biçimlendirmesi kullanma, düz metin yaz.
Geri bildirimi Türkçe yaz.
`

const SummaryPromptTemplate = `"{topic}" konusunu, "{center_node}" başlığı altındaki yeriyle birlikte, yeni öğrenen birine kısa ve öğretici bir şekilde özetle.
Madde işaretleri veya markdown kullanma, düz metin yaz.
Geri bildirimi Türkçe yaz.
`

const MotivationPromptTemplate = `Yazılım öğrenen bir kullanıcıya günün motivasyon mesajını yaz.
Kısa, samimi ve cesaretlendirici tek bir paragraf olsun.
Markdown kullanma, düz metin yaz. Türkçe yaz.
`
